package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"classmanager_backend/internals/features/users/students/controller"
	authMiddleware "classmanager_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB, log *logrus.Logger, protect fiber.Handler) {
	h := controller.NewStudentController(db, log)

	students := api.Group("/students", protect, authMiddleware.IsTeacher("the student directory"))
	students.Get("/", h.ListStudents)
}
