package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authRoute "classmanager_backend/internals/features/users/auth/route"
	helper "classmanager_backend/internals/helpers"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, tokens *helper.TokenIssuer, log *logrus.Logger, protect fiber.Handler, rateLimit bool) {
	authRoute.AuthRoutes(api, db, tokens, log, protect, rateLimit)
}
