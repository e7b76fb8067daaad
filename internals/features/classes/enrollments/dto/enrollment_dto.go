// internals/features/classes/enrollments/dto/enrollment_dto.go
package dto

import "time"

/* ===================== REQUESTS ===================== */

// EnrollRequest: body POST /api/classes/:id/students
type EnrollRequest struct {
	StudentID uint `json:"studentId" validate:"required,gt=0"`
}

/* ===================== RESPONSES ===================== */

// StudentClassRow: kelas yang diikuti seorang siswa (join users untuk nama guru).
type StudentClassRow struct {
	ID             uint      `json:"id"              gorm:"column:id"`
	Name           string    `json:"name"            gorm:"column:name"`
	Description    string    `json:"description"     gorm:"column:description"`
	TeacherID      uint      `json:"teacher_id"      gorm:"column:teacher_id"`
	TeacherName    string    `json:"teacher_name"    gorm:"column:teacher_name"`
	EnrollmentDate time.Time `json:"enrollment_date" gorm:"column:enrollment_date"`
}

// ClassStudentRow: satu baris roster kelas.
type ClassStudentRow struct {
	ID             uint      `json:"id"              gorm:"column:id"`
	FirstName      string    `json:"first_name"      gorm:"column:first_name"`
	LastName       string    `json:"last_name"       gorm:"column:last_name"`
	Email          string    `json:"email"           gorm:"column:email"`
	EnrollmentDate time.Time `json:"enrollment_date" gorm:"column:enrollment_date"`
}
