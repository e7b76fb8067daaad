// Package access memutuskan siapa boleh mengelola atau melihat sebuah kelas.
// Setiap cek membaca ulang fakta kepemilikan/enrollment dari DB; tidak ada cache.
package access

import (
	"context"

	"gorm.io/gorm"

	"classmanager_backend/internals/constants"
	classModel "classmanager_backend/internals/features/classes/classes/model"
	classRepo "classmanager_backend/internals/features/classes/classes/repository"
	enrollService "classmanager_backend/internals/features/classes/enrollments/service"
	studentModel "classmanager_backend/internals/features/users/students/model"
	studentRepo "classmanager_backend/internals/features/users/students/repository"
	helper "classmanager_backend/internals/helpers"
)

// Action menentukan pesan Forbidden untuk guru yang bukan pemilik.
type Action int

const (
	ActionView Action = iota
	ActionViewRoster
	ActionUpdate
	ActionDelete
	ActionAddStudent
	ActionRemoveStudent
)

const (
	MsgClassNotFound   = "Class not found"
	MsgStudentNotFound = "Student not found"
	// sama untuk "tidak punya baris students" dan "tidak terdaftar"
	MsgNotEnrolled = "You are not enrolled in this class"
)

func (a Action) deniedMessage() string {
	switch a {
	case ActionView:
		return "You can only view your own classes"
	case ActionViewRoster:
		return "You can only view students in your own classes"
	case ActionUpdate:
		return "You can only update your own classes"
	case ActionDelete:
		return "You can only delete your own classes"
	case ActionAddStudent:
		return "You can only add students to your own classes"
	case ActionRemoveStudent:
		return "You can only remove students from your own classes"
	default:
		return "Access denied"
	}
}

type Policy struct {
	DB          *gorm.DB
	Enrollments *enrollService.EnrollmentService
}

func NewPolicy(db *gorm.DB, enrollments *enrollService.EnrollmentService) *Policy {
	return &Policy{DB: db, Enrollments: enrollments}
}

func (p *Policy) loadClass(ctx context.Context, classID uint) (*classModel.ClassModel, error) {
	class, err := classRepo.FindClassByID(ctx, p.DB, classID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.ErrNotFound(MsgClassNotFound)
		}
		return nil, helper.ErrInternal("find class", err)
	}
	return class, nil
}

/* ===================== MANAGE ===================== */

// CanManageClass: hanya guru pemilik. Siswa dan role lain selalu Forbidden.
func (p *Policy) CanManageClass(ctx context.Context, caller helper.Caller, classID uint, act Action) (*classModel.ClassModel, error) {
	class, err := p.loadClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case constants.RoleTeacher:
		if class.TeacherID != caller.UserID {
			return nil, helper.ErrForbidden(act.deniedMessage())
		}
		return class, nil
	case constants.RoleStudent:
		return nil, helper.ErrForbidden(constants.RoleErrorTeacher("this action"))
	default:
		return nil, helper.ErrForbidden(act.deniedMessage())
	}
}

/* ===================== VIEW ===================== */

// CanViewClass: guru -> pemilik; siswa -> punya baris students DAN terdaftar di kelas.
func (p *Policy) CanViewClass(ctx context.Context, caller helper.Caller, classID uint, act Action) (*classModel.ClassModel, error) {
	class, err := p.loadClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case constants.RoleTeacher:
		if class.TeacherID != caller.UserID {
			return nil, helper.ErrForbidden(act.deniedMessage())
		}
		return class, nil

	case constants.RoleStudent:
		student, err := p.LinkedStudent(ctx, caller.UserID)
		if err != nil {
			if helper.IsKind(err, helper.KindNotFound) {
				return nil, helper.ErrForbidden(MsgNotEnrolled)
			}
			return nil, err
		}
		ok, err := p.Enrollments.IsEnrolled(ctx, student.ID, class.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, helper.ErrForbidden(MsgNotEnrolled)
		}
		return class, nil

	default:
		return nil, helper.ErrForbidden(act.deniedMessage())
	}
}

/* ===================== STUDENTS ===================== */

// ResolveStudent: mutasi enrollment memakai Student id (bukan User id).
func (p *Policy) ResolveStudent(ctx context.Context, studentID uint) (*studentModel.StudentModel, error) {
	s, err := studentRepo.FindStudentByID(ctx, p.DB, studentID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.ErrNotFound(MsgStudentNotFound)
		}
		return nil, helper.ErrInternal("find student", err)
	}
	return s, nil
}

// LinkedStudent mencari baris students milik user; NotFound kalau tidak ada.
func (p *Policy) LinkedStudent(ctx context.Context, userID uint) (*studentModel.StudentModel, error) {
	s, err := studentRepo.FindStudentByUserID(ctx, p.DB, userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.ErrNotFound("Student record not found")
		}
		return nil, helper.ErrInternal("find student", err)
	}
	return s, nil
}
