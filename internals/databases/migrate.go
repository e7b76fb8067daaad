package database

import (
	"fmt"

	"gorm.io/gorm"

	classModel "classmanager_backend/internals/features/classes/classes/model"
	enrollmentModel "classmanager_backend/internals/features/classes/enrollments/model"
	studentModel "classmanager_backend/internals/features/users/students/model"
	userModel "classmanager_backend/internals/features/users/user/model"
)

// Migrate membuat tabel users, classes, students, class_enrollments beserta FK cascade.
// Urutan penting: parent dulu.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&enrollmentModel.EnrollmentModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
