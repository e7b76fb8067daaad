package model

import (
	"time"

	classModel "classmanager_backend/internals/features/classes/classes/model"
	studentModel "classmanager_backend/internals/features/users/students/model"
)

// EnrollmentModel adalah tabel join students x classes.
// Pasangan (student_id, class_id) unik; hapus parent ikut menghapus baris ini.
type EnrollmentModel struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	StudentID      uint      `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:idx_class_enrollments_pair"`
	ClassID        uint      `json:"class_id" gorm:"column:class_id;not null;uniqueIndex:idx_class_enrollments_pair;index"`
	EnrollmentDate time.Time `json:"enrollment_date" gorm:"column:enrollment_date;not null;autoCreateTime"`

	Student *studentModel.StudentModel `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Class   *classModel.ClassModel     `json:"-" gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
}

func (EnrollmentModel) TableName() string {
	return "class_enrollments"
}
