package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	classRoute "classmanager_backend/internals/features/classes/classes/route"
)

func ClassRoutes(api fiber.Router, db *gorm.DB, log *logrus.Logger, protect fiber.Handler) {
	classRoute.ClassRoutes(api, db, log, protect)
}
