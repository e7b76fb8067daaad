package repository

import (
	"context"

	"gorm.io/gorm"

	enrollDTO "classmanager_backend/internals/features/classes/enrollments/dto"
	enrollModel "classmanager_backend/internals/features/classes/enrollments/model"
)

func CreateEnrollment(ctx context.Context, db *gorm.DB, e *enrollModel.EnrollmentModel) error {
	return db.WithContext(ctx).Create(e).Error
}

// DeleteEnrollment menghapus pasangan (student, class). removed=false kalau memang tidak ada.
func DeleteEnrollment(ctx context.Context, db *gorm.DB, studentID, classID uint) (bool, error) {
	res := db.WithContext(ctx).
		Where("student_id = ? AND class_id = ?", studentID, classID).
		Delete(&enrollModel.EnrollmentModel{})
	return res.RowsAffected > 0, res.Error
}

func ExistsEnrollment(ctx context.Context, db *gorm.DB, studentID, classID uint) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&enrollModel.EnrollmentModel{}).
		Where("student_id = ? AND class_id = ?", studentID, classID).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

// ListClassesByStudent: classes x class_enrollments x users (nama guru)
func ListClassesByStudent(ctx context.Context, db *gorm.DB, studentID uint) ([]enrollDTO.StudentClassRow, error) {
	rows := make([]enrollDTO.StudentClassRow, 0)
	err := db.WithContext(ctx).
		Table("classes AS c").
		Select("c.id, c.name, c.description, c.teacher_id, u.full_name AS teacher_name, ce.enrollment_date").
		Joins("JOIN class_enrollments AS ce ON ce.class_id = c.id").
		Joins("JOIN users AS u ON u.id = c.teacher_id").
		Where("ce.student_id = ?", studentID).
		Order("ce.id ASC").
		Scan(&rows).Error
	return rows, err
}

// ListStudentsByClass: roster satu kelas, urut sesuai waktu masuk.
func ListStudentsByClass(ctx context.Context, db *gorm.DB, classID uint) ([]enrollDTO.ClassStudentRow, error) {
	rows := make([]enrollDTO.ClassStudentRow, 0)
	err := db.WithContext(ctx).
		Table("students AS s").
		Select("s.id, s.first_name, s.last_name, s.email, ce.enrollment_date").
		Joins("JOIN class_enrollments AS ce ON ce.student_id = s.id").
		Where("ce.class_id = ?", classID).
		Order("ce.id ASC").
		Scan(&rows).Error
	return rows, err
}
