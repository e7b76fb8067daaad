package controller

import (
	"github.com/gofiber/fiber/v2"

	enrollDTO "classmanager_backend/internals/features/classes/enrollments/dto"
	helper "classmanager_backend/internals/helpers"
)

// GET /api/classes/:id/students
func (ctl *ClassController) ListClassStudents(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	students, err := ctl.Service.Roster(c.UserContext(), caller, id)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"students": students})
}

// POST /api/classes/:id/students  body: {studentId}
func (ctl *ClassController) AddStudentToClass(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	var req enrollDTO.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}

	enrollmentID, err := ctl.Service.AddStudent(c.UserContext(), caller, id, req.StudentID)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, "Student added to class successfully", fiber.Map{
		"enrollmentId": enrollmentID,
	})
}

// DELETE /api/classes/:classId/students/:studentId
func (ctl *ClassController) RemoveStudentFromClass(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	classID, err := helper.ParseIDParam(c, "classId")
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	studentID, err := helper.ParseIDParam(c, "studentId")
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	if err := ctl.Service.RemoveStudent(c.UserContext(), caller, classID, studentID); err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, "Student removed from class successfully", nil)
}
