package user

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	authDTO "classmanager_backend/internals/features/users/auth/dto"
	"classmanager_backend/internals/features/users/auth/service"
	helper "classmanager_backend/internals/helpers"
)

type UserSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON mendaftarkan user lewat AuthService supaya siswa ikut
// mendapat baris students. User yang sudah ada dilewati.
func SeedUsersFromJSON(ctx context.Context, svc *service.AuthService, filePath string, log *logrus.Logger) (int, error) {
	log.WithField("file", filePath).Info("reading user seed")

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, err
	}

	created := 0
	for _, data := range inputs {
		_, err := svc.Register(ctx, authDTO.RegisterRequest{
			Username: data.Username,
			Password: data.Password,
			Email:    data.Email,
			FullName: data.FullName,
			Role:     data.Role,
		})
		switch {
		case err == nil:
			created++
		case helper.IsKind(err, helper.KindDuplicateIdentity):
			log.WithField("username", data.Username).Info("seed user already exists, skipped")
		default:
			log.WithField("username", data.Username).WithError(err).Warn("seed user failed")
		}
	}
	return created, nil
}
