package seeds

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"classmanager_backend/internals/features/users/auth/service"
	helper "classmanager_backend/internals/helpers"
	users "classmanager_backend/internals/seeds/users/auth"
)

// RunAllSeeds dijalankan dari main kalau SEED_USERS_FILE diisi.
func RunAllSeeds(ctx context.Context, db *gorm.DB, tokens *helper.TokenIssuer, log *logrus.Logger, usersFile string) error {
	//* User
	n, err := users.SeedUsersFromJSON(ctx, service.NewAuthService(db, tokens, log), usersFile, log)
	if err != nil {
		return err
	}
	log.WithField("created", n).Info("user seed done")
	return nil
}
