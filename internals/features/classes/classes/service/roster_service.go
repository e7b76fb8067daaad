package service

import (
	"context"

	"classmanager_backend/internals/features/classes/access"
	enrollDTO "classmanager_backend/internals/features/classes/enrollments/dto"
	helper "classmanager_backend/internals/helpers"
)

/* ===================== ROSTER (class_enrollments) ===================== */

// Roster: guru pemilik atau siswa terdaftar.
func (s *ClassService) Roster(ctx context.Context, caller helper.Caller, classID uint) ([]enrollDTO.ClassStudentRow, error) {
	class, err := s.Access.CanViewClass(ctx, caller, classID, access.ActionViewRoster)
	if err != nil {
		return nil, err
	}
	return s.Enrollments.StudentsForClass(ctx, class.ID)
}

// AddStudent mengembalikan id enrollment.
func (s *ClassService) AddStudent(ctx context.Context, caller helper.Caller, classID, studentID uint) (uint, error) {
	if studentID == 0 {
		return 0, helper.ErrValidation("Student ID is required")
	}
	class, err := s.Access.CanManageClass(ctx, caller, classID, access.ActionAddStudent)
	if err != nil {
		return 0, err
	}
	student, err := s.Access.ResolveStudent(ctx, studentID)
	if err != nil {
		return 0, err
	}
	return s.Enrollments.Enroll(ctx, student.ID, class.ID)
}

// RemoveStudent: siswa yang tidak terdaftar -> 400.
func (s *ClassService) RemoveStudent(ctx context.Context, caller helper.Caller, classID, studentID uint) error {
	class, err := s.Access.CanManageClass(ctx, caller, classID, access.ActionRemoveStudent)
	if err != nil {
		return err
	}
	student, err := s.Access.ResolveStudent(ctx, studentID)
	if err != nil {
		return err
	}
	removed, err := s.Enrollments.Unenroll(ctx, student.ID, class.ID)
	if err != nil {
		return err
	}
	if !removed {
		return helper.ErrValidation("Student was not enrolled in this class")
	}
	return nil
}
