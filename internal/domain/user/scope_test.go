package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
)

func TestResolveScope_SuperAdmin_Unrestricted(t *testing.T) {
	scope := ResolveScope(Requester{UserID: "u1", Role: RoleSuperAdmin})

	assert.True(t, scope.Unrestricted)
	assert.False(t, scope.Deny)
}

func TestResolveScope_Admin_DivisionScoped(t *testing.T) {
	scope := ResolveScope(Requester{UserID: "u1", Role: RoleAdmin, DivisionID: "div-1"})

	assert.Equal(t, "div-1", scope.DivisionID)
	assert.False(t, scope.Deny)
	assert.False(t, scope.Unrestricted)
}

func TestResolveScope_Clerk_SectionScoped(t *testing.T) {
	scope := ResolveScope(Requester{UserID: "u1", Role: RoleClerk, SectionID: "sec-1"})

	assert.Equal(t, "sec-1", scope.SectionID)
	assert.False(t, scope.Deny)
}

func TestResolveScope_Employee_SelfOnly(t *testing.T) {
	scope := ResolveScope(Requester{UserID: "u1", Role: RoleEmployee, EmployeeID: "emp-1"})

	assert.Equal(t, "emp-1", scope.EmployeeID)
	assert.False(t, scope.Deny)
}

// A scoped role without the matching assignment is denied, never widened.
func TestResolveScope_MissingAssignment_Denied(t *testing.T) {
	tests := []struct {
		name string
		req  Requester
	}{
		{"admin without division", Requester{UserID: "u1", Role: RoleAdmin}},
		{"clerk without section", Requester{UserID: "u1", Role: RoleClerk}},
		{"employee without employee record", Requester{UserID: "u1", Role: RoleEmployee}},
		{"unknown role without employee record", Requester{UserID: "u1", Role: "superuser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := ResolveScope(tt.req)
			assert.True(t, scope.Deny)
			assert.False(t, scope.Unrestricted)
		})
	}
}

func TestResolveScope_UnknownRole_TreatedAsSelfOnly(t *testing.T) {
	scope := ResolveScope(Requester{UserID: "u1", Role: "intern", EmployeeID: "emp-7"})

	assert.Equal(t, "emp-7", scope.EmployeeID)
	assert.False(t, scope.Unrestricted)
}

func TestScopePredicate_Allows(t *testing.T) {
	inDivision := employee.Employee{ID: "emp-1", DivisionID: "div-1", SectionID: "sec-1"}
	outDivision := employee.Employee{ID: "emp-2", DivisionID: "div-2", SectionID: "sec-9"}

	deny := ScopePredicate{Deny: true}
	assert.False(t, deny.Allows(inDivision))

	all := ScopePredicate{Unrestricted: true}
	assert.True(t, all.Allows(inDivision))
	assert.True(t, all.Allows(outDivision))

	division := ScopePredicate{DivisionID: "div-1"}
	assert.True(t, division.Allows(inDivision))
	assert.False(t, division.Allows(outDivision))

	section := ScopePredicate{SectionID: "sec-1"}
	assert.True(t, section.Allows(inDivision))
	assert.False(t, section.Allows(outDivision))

	self := ScopePredicate{EmployeeID: "emp-1"}
	assert.True(t, self.Allows(inDivision))
	assert.False(t, self.Allows(outDivision))
}

// Deny dominates: even a row that matches every other field is refused.
func TestScopePredicate_DenyDominates(t *testing.T) {
	p := ScopePredicate{Deny: true, Unrestricted: true, DivisionID: "div-1"}

	assert.False(t, p.Allows(employee.Employee{ID: "emp-1", DivisionID: "div-1"}))
}

func TestScopePredicate_DirectoryFilter(t *testing.T) {
	deny := ScopePredicate{Deny: true}.DirectoryFilter()
	assert.NotNil(t, deny.EmployeeIDs)
	assert.Empty(t, deny.EmployeeIDs)

	division := ScopePredicate{DivisionID: "div-1"}.DirectoryFilter()
	assert.Equal(t, "div-1", division.DivisionID)
	assert.Nil(t, division.EmployeeIDs)

	self := ScopePredicate{EmployeeID: "emp-1"}.DirectoryFilter()
	assert.Equal(t, []string{"emp-1"}, self.EmployeeIDs)
}

// Widening privilege never shrinks the visible employee set.
func TestResolveScope_Monotonic(t *testing.T) {
	directory := []employee.Employee{
		{ID: "emp-1", DivisionID: "div-1", SectionID: "sec-1"},
		{ID: "emp-2", DivisionID: "div-1", SectionID: "sec-2"},
		{ID: "emp-3", DivisionID: "div-2", SectionID: "sec-3"},
	}

	visible := func(p ScopePredicate) map[string]bool {
		out := make(map[string]bool)
		for _, e := range directory {
			if p.Allows(e) {
				out[e.ID] = true
			}
		}
		return out
	}

	employeeScope := visible(ResolveScope(Requester{Role: RoleEmployee, EmployeeID: "emp-1"}))
	clerkScope := visible(ResolveScope(Requester{Role: RoleClerk, SectionID: "sec-1"}))
	adminScope := visible(ResolveScope(Requester{Role: RoleAdmin, DivisionID: "div-1"}))
	superScope := visible(ResolveScope(Requester{Role: RoleSuperAdmin}))

	for id := range employeeScope {
		assert.True(t, clerkScope[id])
	}
	for id := range clerkScope {
		assert.True(t, adminScope[id])
	}
	for id := range adminScope {
		assert.True(t, superScope[id])
	}
	assert.Len(t, superScope, len(directory))
}

func TestRequesterFromClaims(t *testing.T) {
	claims := map[string]interface{}{
		"user_id":     "u1",
		"employee_id": "emp-1",
		"role":        "clerk",
		"division_id": "div-1",
		"section_id":  "sec-1",
		"exp":         1234,
	}

	req := RequesterFromClaims(claims)

	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, "emp-1", req.EmployeeID)
	assert.Equal(t, RoleClerk, req.Role)
	assert.Equal(t, "div-1", req.DivisionID)
	assert.Equal(t, "sec-1", req.SectionID)
}

func TestRequesterFromClaims_MissingClaims(t *testing.T) {
	req := RequesterFromClaims(map[string]interface{}{})

	assert.Empty(t, req.UserID)
	assert.Empty(t, req.Role)
	assert.True(t, ResolveScope(req).Deny)
}
