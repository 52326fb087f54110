package user

type Permission string

const (
	// Reports
	PermissionReportsView    Permission = "reports.view"
	PermissionReportsViewAll Permission = "reports.view_all"

	// Audit
	PermissionAuditView Permission = "audit.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionReportsView,
		PermissionReportsViewAll,
		PermissionAuditView,
	},
	RoleAdmin: {
		PermissionReportsView,
		PermissionReportsViewAll,
		PermissionAuditView,
	},
	RoleClerk: {
		PermissionReportsView,
		PermissionReportsViewAll,
	},
	RoleEmployee: {
		// Own attendance reports only
		PermissionReportsView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
