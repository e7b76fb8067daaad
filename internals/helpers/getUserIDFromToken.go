package helper

import (
	"github.com/gofiber/fiber/v2"

	"classmanager_backend/internals/constants"
)

// Key Locals yang diisi middleware.
const (
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocUserRole  = "userRole"
	LocRequestID = "reqid"
)

// Caller adalah identitas pemanggil yang sudah diverifikasi dari bearer token.
type Caller struct {
	UserID   uint
	UserName string
	Role     constants.Role
}

func (c Caller) IsTeacher() bool { return c.Role == constants.RoleTeacher }

// SetCaller dipanggil oleh AuthMiddleware setelah token valid.
func SetCaller(c *fiber.Ctx, caller Caller) {
	c.Locals(LocUserID, caller.UserID)
	c.Locals(LocUserName, caller.UserName)
	c.Locals(LocUserRole, string(caller.Role))
}

// GetCaller ambil identitas dari Locals. Return 401 kalau belum login.
func GetCaller(c *fiber.Ctx) (Caller, error) {
	id, ok := c.Locals(LocUserID).(uint)
	if !ok || id == 0 {
		return Caller{}, ErrUnauthorized("No token, authorization denied")
	}
	roleStr, _ := c.Locals(LocUserRole).(string)
	role, err := constants.ParseRole(roleStr)
	if err != nil {
		return Caller{}, ErrUnauthorized("Token is not valid")
	}
	name, _ := c.Locals(LocUserName).(string)
	return Caller{UserID: id, UserName: name, Role: role}, nil
}

// RequestID dari Locals (diisi middleware RequestContext).
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocRequestID).(string)
	return id
}
