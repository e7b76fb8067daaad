package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"classmanager_backend/internals/features/classes/classes/dto"
	"classmanager_backend/internals/features/classes/classes/service"
	helper "classmanager_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	Service *service.ClassService
	Log     *logrus.Logger
}

func NewClassController(svc *service.ClassService, log *logrus.Logger) *ClassController {
	return &ClassController{Service: svc, Log: log}
}

// POST /api/classes
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	class, err := ctl.Service.Create(c.UserContext(), caller, req)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, "Class created successfully", fiber.Map{
		"classId": class.ID,
	})
}

// GET /api/classes
func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	classes, err := ctl.Service.ListForViewer(c.UserContext(), caller)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"classes": classes})
}

// GET /api/classes/:id
func (ctl *ClassController) GetClassByID(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	class, err := ctl.Service.View(c.UserContext(), caller, id)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"class": class})
}

// PUT /api/classes/:id
func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := ctl.Service.Update(c.UserContext(), caller, id, req); err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, "Class updated successfully", nil)
}

// DELETE /api/classes/:id
func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}

	if err := ctl.Service.Delete(c.UserContext(), caller, id); err != nil {
		return helper.JsonAppError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, "Class deleted successfully", nil)
}
