package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	studentRoute "classmanager_backend/internals/features/users/students/route"
)

// UserRoutes: direktori siswa (khusus teacher)
func UserRoutes(api fiber.Router, db *gorm.DB, log *logrus.Logger, protect fiber.Handler) {
	studentRoute.StudentRoutes(api, db, log, protect)
}
