// Package auth centralizes role-privilege comparison and the mutation
// policy protecting superuser accounts. Every guard and handler that
// needs to compare roles goes through this table so the ordering is
// defined in exactly one place.
package auth

// Role names accepted in users.role and in token claims.
const (
	RoleViewer    = "viewer"
	RoleEditor    = "editor"
	RoleAdmin     = "admin"
	RoleSuperuser = "superuser"
)

// roleLevels maps each role to its privilege level. Higher means more
// privileged. Unknown roles map to zero and therefore lose every
// comparison.
var roleLevels = map[string]int{
	RoleViewer:    1,
	RoleEditor:    2,
	RoleAdmin:     3,
	RoleSuperuser: 4,
}

// Level returns the privilege level of a role, or 0 for unknown roles.
func Level(role string) int { return roleLevels[role] }

// IsValidRole reports whether the given string names a known role.
func IsValidRole(role string) bool {
	_, ok := roleLevels[role]
	return ok
}

// HasAtLeastPrivilege reports whether role carries at least the privilege
// of threshold. Unknown roles never satisfy any threshold.
func HasAtLeastPrivilege(role, threshold string) bool {
	lvl, thr := roleLevels[role], roleLevels[threshold]
	return lvl > 0 && lvl >= thr
}
