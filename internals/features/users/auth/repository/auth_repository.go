// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	userModel "classmanager_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uint) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *userModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

// UpdateUserColumns hanya menerima kolom dari daftar statis (email, full_name).
func UpdateUserColumns(ctx context.Context, db *gorm.DB, userID uint, email, fullName *string) (bool, error) {
	updates := map[string]any{}
	if email != nil {
		updates[userModel.ColumnEmail] = *email
	}
	if fullName != nil {
		updates[userModel.ColumnFullName] = *fullName
	}
	if len(updates) == 0 {
		return false, nil
	}
	res := db.WithContext(ctx).Model(&userModel.UserModel{}).Where("id = ?", userID).Updates(updates)
	return res.RowsAffected > 0, res.Error
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uint, hash string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", hash).Error
}

func DeleteUser(ctx context.Context, db *gorm.DB, userID uint) (bool, error) {
	res := db.WithContext(ctx).Delete(&userModel.UserModel{}, userID)
	return res.RowsAffected > 0, res.Error
}

// IsUsernameTaken cek apakah username sudah dipakai
func IsUsernameTaken(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	if username == "" {
		return false, errors.New("username cannot be empty")
	}
	return exists(ctx, db, "username = ?", username)
}

// IsEmailTaken cek email; excludeID > 0 untuk mengabaikan user sendiri.
func IsEmailTaken(ctx context.Context, db *gorm.DB, email string, excludeID uint) (bool, error) {
	if email == "" {
		return false, errors.New("email cannot be empty")
	}
	if excludeID > 0 {
		return exists(ctx, db, "email = ? AND id <> ?", email, excludeID)
	}
	return exists(ctx, db, "email = ?", email)
}

func exists(ctx context.Context, db *gorm.DB, where string, args ...any) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&userModel.UserModel{}).Where(where, args...).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
