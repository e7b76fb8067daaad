package auth

import (
	"github.com/gofiber/fiber/v2"

	"classmanager_backend/internals/constants"
	helper "classmanager_backend/internals/helpers"
)

// OnlyRoles validasi role + custom error message. Harus dipasang setelah AuthMiddleware.
func OnlyRoles(customForbiddenMessage string, roles ...constants.Role) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		caller, err := helper.GetCaller(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range roles {
			if caller.Role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// IsTeacher shortcut untuk route khusus teacher.
func IsTeacher(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorTeacher(feature), constants.RoleTeacher)
}
