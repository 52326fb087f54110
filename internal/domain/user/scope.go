package user

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
)

// Requester identifies who is asking for a report. Built once per request
// from JWT claims and threaded as a value; aggregation logic never reads
// ambient request state.
type Requester struct {
	UserID     string
	EmployeeID string
	Role       Role
	DivisionID string
	SectionID  string
}

// ScopePredicate is the set of employees a requester may see, expressed
// as residual constraints. Deny dominates every other field.
type ScopePredicate struct {
	Deny         bool
	Unrestricted bool
	DivisionID   string // restrict to this division when non-empty
	SectionID    string // restrict to this section when non-empty
	EmployeeID   string // restrict to this single employee when non-empty
}

// ResolveScope derives the visibility predicate from the requester's role
// and organizational assignment.
//
// A role that implies a division or section scope but carries no such
// assignment resolves to an explicit deny, never to unrestricted access.
func ResolveScope(req Requester) ScopePredicate {
	switch req.Role {
	case RoleSuperAdmin:
		return ScopePredicate{Unrestricted: true}
	case RoleAdmin:
		if req.DivisionID == "" {
			return ScopePredicate{Deny: true}
		}
		return ScopePredicate{DivisionID: req.DivisionID}
	case RoleClerk:
		if req.SectionID == "" {
			return ScopePredicate{Deny: true}
		}
		return ScopePredicate{SectionID: req.SectionID}
	default:
		// Employee and any unknown role: own records only.
		if req.EmployeeID == "" {
			return ScopePredicate{Deny: true}
		}
		return ScopePredicate{EmployeeID: req.EmployeeID}
	}
}

// Allows reports whether the predicate admits the given directory row.
func (p ScopePredicate) Allows(e employee.Employee) bool {
	if p.Deny {
		return false
	}
	if p.Unrestricted {
		return true
	}
	if p.DivisionID != "" && e.DivisionID != p.DivisionID {
		return false
	}
	if p.SectionID != "" && e.SectionID != p.SectionID {
		return false
	}
	if p.EmployeeID != "" && e.ID != p.EmployeeID {
		return false
	}
	return true
}

// DirectoryFilter pushes the predicate down to the directory listing.
// The residual Allows check still runs in-core so user-supplied filters
// can only narrow, never widen, what the role grants.
func (p ScopePredicate) DirectoryFilter() employee.DirectoryFilter {
	if p.Deny {
		return employee.DirectoryFilter{EmployeeIDs: []string{}}
	}
	f := employee.DirectoryFilter{
		DivisionID: p.DivisionID,
		SectionID:  p.SectionID,
	}
	if p.EmployeeID != "" {
		f.EmployeeIDs = []string{p.EmployeeID}
	}
	return f
}

// RequesterFromClaims builds a Requester from access-token claims.
func RequesterFromClaims(claims map[string]interface{}) Requester {
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	return Requester{
		UserID:     str("user_id"),
		EmployeeID: str("employee_id"),
		Role:       Role(str("role")),
		DivisionID: str("division_id"),
		SectionID:  str("section_id"),
	}
}
