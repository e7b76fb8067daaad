package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	enrollDTO "classmanager_backend/internals/features/classes/enrollments/dto"
	enrollModel "classmanager_backend/internals/features/classes/enrollments/model"
	enrollRepo "classmanager_backend/internals/features/classes/enrollments/repository"
	helper "classmanager_backend/internals/helpers"
	"classmanager_backend/internals/middlewares/metrics"
)

const msgAlreadyEnrolled = "Student is already enrolled in this class"

// EnrollmentService mengelola tabel class_enrollments. Tidak melakukan cek akses;
// pemanggil (class service) sudah lewat access.Policy.
type EnrollmentService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewEnrollmentService(db *gorm.DB, log *logrus.Logger) *EnrollmentService {
	return &EnrollmentService{DB: db, Log: log}
}

// Enroll mengembalikan id enrollment baru. Pasangan ganda -> Conflict (unique index).
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, classID uint) (uint, error) {
	e := enrollModel.EnrollmentModel{StudentID: studentID, ClassID: classID}
	if err := enrollRepo.CreateEnrollment(ctx, s.DB, &e); err != nil {
		switch {
		case helper.IsDuplicateKey(err):
			return 0, helper.ErrConflict(msgAlreadyEnrolled)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return 0, helper.ErrNotFound("Class or student not found")
		default:
			return 0, helper.ErrInternal("create enrollment", err)
		}
	}

	metrics.EnrollmentsTotal.WithLabelValues("enroll").Inc()
	s.Log.WithFields(logrus.Fields{"student_id": studentID, "class_id": classID}).Info("student enrolled")
	return e.ID, nil
}

// Unenroll idempotent: baris yang tidak ada bukan error, removed=false.
func (s *EnrollmentService) Unenroll(ctx context.Context, studentID, classID uint) (bool, error) {
	removed, err := enrollRepo.DeleteEnrollment(ctx, s.DB, studentID, classID)
	if err != nil {
		return false, helper.ErrInternal("delete enrollment", err)
	}
	if removed {
		metrics.EnrollmentsTotal.WithLabelValues("unenroll").Inc()
		s.Log.WithFields(logrus.Fields{"student_id": studentID, "class_id": classID}).Info("student unenrolled")
	}
	return removed, nil
}

func (s *EnrollmentService) ClassesForStudent(ctx context.Context, studentID uint) ([]enrollDTO.StudentClassRow, error) {
	rows, err := enrollRepo.ListClassesByStudent(ctx, s.DB, studentID)
	if err != nil {
		return nil, helper.ErrInternal("list classes for student", err)
	}
	return rows, nil
}

func (s *EnrollmentService) StudentsForClass(ctx context.Context, classID uint) ([]enrollDTO.ClassStudentRow, error) {
	rows, err := enrollRepo.ListStudentsByClass(ctx, s.DB, classID)
	if err != nil {
		return nil, helper.ErrInternal("list students for class", err)
	}
	return rows, nil
}

func (s *EnrollmentService) IsEnrolled(ctx context.Context, studentID, classID uint) (bool, error) {
	ok, err := enrollRepo.ExistsEnrollment(ctx, s.DB, studentID, classID)
	if err != nil {
		return false, helper.ErrInternal("check enrollment", err)
	}
	return ok, nil
}
