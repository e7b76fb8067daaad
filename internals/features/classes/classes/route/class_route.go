// internals/features/classes/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"classmanager_backend/internals/features/classes/access"
	classctrl "classmanager_backend/internals/features/classes/classes/controller"
	classService "classmanager_backend/internals/features/classes/classes/service"
	enrollService "classmanager_backend/internals/features/classes/enrollments/service"
	authMiddleware "classmanager_backend/internals/middlewares/auth"
)

// ClassRoutes: /api/classes. protect = AuthMiddleware; mutasi tambahan IsTeacher.
func ClassRoutes(api fiber.Router, db *gorm.DB, log *logrus.Logger, protect fiber.Handler) {
	enrollments := enrollService.NewEnrollmentService(db, log)
	svc := classService.NewClassService(db, access.NewPolicy(db, enrollments), enrollments, log)
	h := classctrl.NewClassController(svc, log)

	classes := api.Group("/classes", protect)

	// teacher only
	onlyTeacher := authMiddleware.IsTeacher("class management")
	classes.Post("/", onlyTeacher, h.CreateClass)
	classes.Put("/:id", onlyTeacher, h.UpdateClass)
	classes.Delete("/:id", onlyTeacher, h.DeleteClass)
	classes.Post("/:id/students", onlyTeacher, h.AddStudentToClass)
	classes.Delete("/:classId/students/:studentId", onlyTeacher, h.RemoveStudentFromClass)

	// teacher pemilik atau siswa terdaftar (dicek di access.Policy)
	classes.Get("/", h.ListClasses)
	classes.Get("/:id", h.GetClassByID)
	classes.Get("/:id/students", h.ListClassStudents)
}
