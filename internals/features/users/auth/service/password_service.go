package service

import (
	"context"

	authDTO "classmanager_backend/internals/features/users/auth/dto"
	authHelper "classmanager_backend/internals/features/users/auth/helper"
	authRepo "classmanager_backend/internals/features/users/auth/repository"
	helper "classmanager_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, in authDTO.ChangePasswordRequest) error {
	if err := validate.Struct(in); err != nil {
		return helper.ValidationAppError(err)
	}
	if authHelper.PasswordTooLong(in.NewPassword) {
		return helper.ErrValidation(msgPasswordTooLong)
	}

	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.ErrNotFound("User not found")
		}
		return helper.ErrInternal("find user", err)
	}

	// Cek password lama
	if err := authHelper.CheckPasswordHash(user.Password, in.CurrentPassword); err != nil {
		return helper.ErrInvalidCredentials()
	}

	newHash, err := authHelper.HashPassword(in.NewPassword)
	if err != nil {
		return helper.ErrInternal("hash password", err)
	}
	if err := authRepo.UpdateUserPassword(ctx, s.DB, userID, newHash); err != nil {
		return helper.ErrInternal("update password", err)
	}
	return nil
}
