package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"classmanager_backend/internals/features/users/students/dto"
	studentRepo "classmanager_backend/internals/features/users/students/repository"
	helper "classmanager_backend/internals/helpers"
)

type StudentController struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewStudentController(db *gorm.DB, log *logrus.Logger) *StudentController {
	return &StudentController{DB: db, Log: log}
}

// GET /api/students?q=&page=&per_page=
// Dipakai guru untuk mencari Student id sebelum menambahkan ke roster.
func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := studentRepo.ListStudents(c.UserContext(), ctl.DB, studentRepo.ListFilter{
		Query:  strings.TrimSpace(c.Query("q")),
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, helper.ErrInternal("list students", err))
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewStudentResponse(r))
	}
	return helper.JsonList(c, "students", out, helper.BuildPagination(total, p))
}
