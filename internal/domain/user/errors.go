package user

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrAuditAccessRequired     = errors.New("audit access required")
)
