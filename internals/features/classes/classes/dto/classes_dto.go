// dto/class_dto.go
package dto

import (
	"time"

	"classmanager_backend/internals/features/classes/classes/model"
	enrollDTO "classmanager_backend/internals/features/classes/enrollments/dto"
)

/* ========== REQUEST DTOs ========== */

// CreateClassRequest: payload saat create
type CreateClassRequest struct {
	Name        string `json:"name"        form:"name"        validate:"max=120"`
	Description string `json:"description" form:"description" validate:"max=2000"`
}

// UpdateClassRequest: name wajib; description kosong/omit = nilai lama dipertahankan.
type UpdateClassRequest struct {
	Name        *string `json:"name"        form:"name"        validate:"omitempty,max=120"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=2000"`
}

/* ========== RESPONSE DTO ========== */

// ClassDetail: GET /api/classes/:id (join users untuk nama guru)
type ClassDetail struct {
	ID          uint      `json:"id"           gorm:"column:id"`
	Name        string    `json:"name"         gorm:"column:name"`
	Description string    `json:"description"  gorm:"column:description"`
	TeacherID   uint      `json:"teacher_id"   gorm:"column:teacher_id"`
	TeacherName string    `json:"teacher_name" gorm:"column:teacher_name"`
	CreatedAt   time.Time `json:"created_at"   gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at"   gorm:"column:updated_at"`
}

// ClassSummary: baris list kelas milik guru + jumlah siswa.
type ClassSummary struct {
	ID           uint      `json:"id"            gorm:"column:id"`
	Name         string    `json:"name"          gorm:"column:name"`
	Description  string    `json:"description"   gorm:"column:description"`
	TeacherID    uint      `json:"teacher_id"    gorm:"column:teacher_id"`
	TeacherName  string    `json:"teacher_name"  gorm:"column:teacher_name"`
	StudentCount int64     `json:"student_count" gorm:"column:student_count"`
	CreatedAt    time.Time `json:"created_at"    gorm:"column:created_at"`
}

// ClassListItem: bentuk seragam GET /api/classes untuk guru dan siswa.
// StudentCount hanya terisi untuk guru, EnrollmentDate hanya untuk siswa.
type ClassListItem struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	TeacherID      uint       `json:"teacher_id"`
	TeacherName    string     `json:"teacher_name"`
	StudentCount   *int64     `json:"student_count,omitempty"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

func FromSummary(s ClassSummary) ClassListItem {
	count := s.StudentCount
	created := s.CreatedAt
	return ClassListItem{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		TeacherID:    s.TeacherID,
		TeacherName:  s.TeacherName,
		StudentCount: &count,
		CreatedAt:    &created,
	}
}

func FromStudentClass(r enrollDTO.StudentClassRow) ClassListItem {
	enrolled := r.EnrollmentDate
	return ClassListItem{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		TeacherID:      r.TeacherID,
		TeacherName:    r.TeacherName,
		EnrollmentDate: &enrolled,
	}
}

// ToModel dipakai saat create; teacher diambil dari token, bukan body.
func (r CreateClassRequest) ToModel(teacherID uint) *model.ClassModel {
	return &model.ClassModel{
		Name:        r.Name,
		Description: r.Description,
		TeacherID:   teacherID,
	}
}
