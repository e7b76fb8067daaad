package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"classmanager_backend/internals/constants"
	"classmanager_backend/internals/features/classes/access"
	"classmanager_backend/internals/features/classes/classes/dto"
	"classmanager_backend/internals/features/classes/classes/model"
	classRepo "classmanager_backend/internals/features/classes/classes/repository"
	enrollService "classmanager_backend/internals/features/classes/enrollments/service"
	helper "classmanager_backend/internals/helpers"
)

const (
	msgNameRequired   = "Class name is required"
	msgAccountRemoved = "User account no longer exists"
)

var validate = validator.New()

type ClassService struct {
	DB          *gorm.DB
	Access      *access.Policy
	Enrollments *enrollService.EnrollmentService
	Log         *logrus.Logger
}

func NewClassService(db *gorm.DB, policy *access.Policy, enrollments *enrollService.EnrollmentService, log *logrus.Logger) *ClassService {
	return &ClassService{DB: db, Access: policy, Enrollments: enrollments, Log: log}
}

/* ===================== CREATE ===================== */

func (s *ClassService) Create(ctx context.Context, caller helper.Caller, in dto.CreateClassRequest) (*model.ClassModel, error) {
	if !caller.IsTeacher() {
		return nil, helper.ErrForbidden(constants.RoleErrorTeacher("class creation"))
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return nil, helper.ErrValidation(msgNameRequired)
	}
	if err := validate.Struct(in); err != nil {
		return nil, helper.ValidationAppError(err)
	}

	m := in.ToModel(caller.UserID)
	if err := classRepo.CreateClass(ctx, s.DB, m); err != nil {
		// token masih valid tapi user guru sudah dihapus
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, helper.ErrUnauthorized(msgAccountRemoved)
		}
		return nil, helper.ErrInternal("create class", err)
	}
	s.Log.WithFields(logrus.Fields{"class_id": m.ID, "teacher_id": caller.UserID}).Info("class created")
	return m, nil
}

/* ===================== UPDATE ===================== */

// Update: name wajib; description kosong atau tidak dikirim mempertahankan nilai lama.
func (s *ClassService) Update(ctx context.Context, caller helper.Caller, classID uint, in dto.UpdateClassRequest) error {
	name := ""
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
	}
	if name == "" {
		return helper.ErrValidation(msgNameRequired)
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationAppError(err)
	}

	class, err := s.Access.CanManageClass(ctx, caller, classID, access.ActionUpdate)
	if err != nil {
		return err
	}

	description := class.Description
	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		description = strings.TrimSpace(*in.Description)
	}

	if _, err := classRepo.UpdateClassColumns(ctx, s.DB, class.ID, name, description); err != nil {
		return helper.ErrInternal("update class", err)
	}
	return nil
}

/* ===================== DELETE ===================== */

func (s *ClassService) Delete(ctx context.Context, caller helper.Caller, classID uint) error {
	class, err := s.Access.CanManageClass(ctx, caller, classID, access.ActionDelete)
	if err != nil {
		return err
	}
	removed, err := classRepo.DeleteClass(ctx, s.DB, class.ID)
	if err != nil {
		return helper.ErrInternal("delete class", err)
	}
	if !removed {
		return helper.ErrNotFound(access.MsgClassNotFound)
	}
	s.Log.WithFields(logrus.Fields{"class_id": class.ID, "teacher_id": caller.UserID}).Info("class deleted")
	return nil
}

/* ===================== READ ===================== */

// Get tanpa cek akses; dipakai setelah CanViewClass.
func (s *ClassService) Get(ctx context.Context, classID uint) (*dto.ClassDetail, error) {
	detail, err := classRepo.GetClassDetail(ctx, s.DB, classID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.ErrNotFound(access.MsgClassNotFound)
		}
		return nil, helper.ErrInternal("get class", err)
	}
	return detail, nil
}

// View = CanViewClass + Get
func (s *ClassService) View(ctx context.Context, caller helper.Caller, classID uint) (*dto.ClassDetail, error) {
	if _, err := s.Access.CanViewClass(ctx, caller, classID, access.ActionView); err != nil {
		return nil, err
	}
	return s.Get(ctx, classID)
}

func (s *ClassService) ListForTeacher(ctx context.Context, teacherID uint) ([]dto.ClassListItem, error) {
	rows, err := classRepo.ListClassesByTeacher(ctx, s.DB, teacherID)
	if err != nil {
		return nil, helper.ErrInternal("list classes", err)
	}
	out := make([]dto.ClassListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromSummary(r))
	}
	return out, nil
}

// ListForViewer: guru melihat kelasnya, siswa melihat kelas yang diikuti.
func (s *ClassService) ListForViewer(ctx context.Context, caller helper.Caller) ([]dto.ClassListItem, error) {
	switch caller.Role {
	case constants.RoleTeacher:
		return s.ListForTeacher(ctx, caller.UserID)

	case constants.RoleStudent:
		student, err := s.Access.LinkedStudent(ctx, caller.UserID)
		if err != nil {
			if helper.IsKind(err, helper.KindNotFound) {
				return nil, helper.ErrForbidden("Student record not found")
			}
			return nil, err
		}
		rows, err := s.Enrollments.ClassesForStudent(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ClassListItem, 0, len(rows))
		for _, r := range rows {
			out = append(out, dto.FromStudentClass(r))
		}
		return out, nil

	default:
		return nil, helper.ErrForbidden("Access denied")
	}
}
