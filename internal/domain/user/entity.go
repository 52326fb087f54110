package user

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Institution-wide access
	RoleAdmin      Role = "admin"       // Scoped to an assigned division
	RoleClerk      Role = "clerk"       // Scoped to an assigned section
	RoleEmployee   Role = "employee"    // Own records only
)
