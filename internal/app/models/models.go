package models

// RoleType identifies the single role an account may hold. An account
// with an empty role has no dashboard and cannot reach role-gated routes.
type RoleType string

const (
	RoleFaculty RoleType = "FACULTY"
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleFaculty, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
