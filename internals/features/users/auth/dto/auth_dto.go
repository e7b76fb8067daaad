package dto

import (
	"classmanager_backend/internals/constants"
	userModel "classmanager_backend/internals/features/users/user/model"
)

/* ========== REQUEST DTOs ========== */

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	FullName string `json:"fullName" validate:"required,max=120"`
	Role     string `json:"role"     validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest: hanya email & fullName yang bisa diubah.
type UpdateProfileRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email,max=255"`
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=120"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6,max=72"`
}

/* ========== RESPONSE DTO ========== */

type PublicUser struct {
	ID       uint           `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	FullName string         `json:"fullName"`
	Role     constants.Role `json:"role"`
}

func NewPublicUser(m *userModel.UserModel) PublicUser {
	return PublicUser{
		ID:       m.ID,
		Username: m.UserName,
		Email:    m.Email,
		FullName: m.FullName,
		Role:     m.Role,
	}
}

// AuthResult adalah hasil register/login: identitas publik + bearer token.
type AuthResult struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
