package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	authDTO "classmanager_backend/internals/features/users/auth/dto"
	"classmanager_backend/internals/features/users/auth/service"
	helper "classmanager_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
	Log     *logrus.Logger
}

func NewAuthController(svc *service.AuthService, log *logrus.Logger) *AuthController {
	return &AuthController{Service: svc, Log: log}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := ac.Service.Register(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}

	return helper.JsonCreated(c, "User registered successfully", fiber.Map{
		"userId": res.User.ID,
		"role":   res.User.Role,
		"token":  res.Token,
		"user":   res.User,
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	res, err := ac.Service.Authenticate(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": res.Token,
		"user":  res.User,
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}
	user, err := ac.Service.Me(c.UserContext(), caller.UserID)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"user": user})
}

// PUT /api/auth/me
func (ac *AuthController) UpdateMe(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}

	var req authDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := ac.Service.UpdateProfile(c.UserContext(), caller.UserID, req)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}
	return helper.JsonOK(c, "Profile updated successfully", fiber.Map{"user": user})
}

// DELETE /api/auth/me
func (ac *AuthController) DeleteMe(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}
	if err := ac.Service.DeleteAccount(c.UserContext(), caller.UserID); err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}
	return helper.JsonOK(c, "Account deleted successfully", nil)
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ac.Service.ChangePassword(c.UserContext(), caller.UserID, req); err != nil {
		return helper.JsonAppError(c, ac.Log, err)
	}
	return helper.JsonOK(c, "Password changed successfully", nil)
}
