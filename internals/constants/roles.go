package constants

import "fmt"

// Role pendaftaran (dipakai discriminator di payload register)
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"

	// Role internal (bukan hasil pendaftaran publik)
	RoleAdmin = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	RegisterRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleParent,
	}

	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleParent,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsRegisterRole(role string) bool {
	for _, r := range RegisterRoles {
		if r == role {
			return true
		}
	}
	return false
}
