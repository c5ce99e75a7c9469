package domain

// Role is a coarse platform access level.
type Role string

const (
	RolePlatformAdmin Role = "platform_admin"
	RoleClientUser    Role = "client_user"

	// RoleNone is the resolved role for users with no recognised assignment,
	// and for any failure to look assignments up.
	RoleNone Role = ""
)

// Valid reports whether r is one of the assignable labels.
func (r Role) Valid() bool {
	return r == RolePlatformAdmin || r == RoleClientUser
}

// ResolveRole picks the highest-privilege recognised role from assigned.
// Only membership matters; order and duplicates are irrelevant.
func ResolveRole(assigned []Role) Role {
	resolved := RoleNone
	for _, r := range assigned {
		switch r {
		case RolePlatformAdmin:
			return RolePlatformAdmin
		case RoleClientUser:
			resolved = RoleClientUser
		}
	}
	return resolved
}
