package constants

import (
	"fmt"
	"strings"
)

// Role adalah peran user. Hanya dua nilai yang valid.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Template pesan error role
const ErrOnlyTeachersCanAccess = "Only teachers can access %s"

// ParseRole menerima string dari body/claim dan mengembalikan Role yang valid.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("role must be either %s or %s", RoleTeacher, RoleStudent)
	}
}

func (r Role) String() string { return string(r) }

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}
