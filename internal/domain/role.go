package domain

// Role is the closed set of access levels. The four-role model is
// canonical; no other role strings are accepted anywhere in the system.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleNurseryAdmin Role = "nursery_admin"
	RoleStaff        Role = "staff"
	RoleRegular      Role = "regular"
)

// roleRank is the single ordering table for the role hierarchy. Both the
// server route guard and the admin client guard compare roles through it,
// so there is exactly one definition of "high enough".
var roleRank = map[Role]int{
	RoleRegular:      0,
	RoleStaff:        1,
	RoleNurseryAdmin: 2,
	RoleSuperAdmin:   3,
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r sits at or above required in the hierarchy.
// Unknown roles rank below everything.
func (r Role) AtLeast(required Role) bool {
	return r.Valid() && roleRank[r] >= roleRank[required]
}
