// models/class_model.go
package model

import (
	"time"

	userModel "classmanager_backend/internals/features/users/user/model"
)

// ClassModel merepresentasikan tabel `classes`
type ClassModel struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;type:varchar(120);not null"`
	Description string    `json:"description" gorm:"column:description;type:text;not null;default:''"`
	TeacherID   uint      `json:"teacher_id" gorm:"column:teacher_id;not null;index"` // FK -> users(id)
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Teacher *userModel.UserModel `json:"-" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
}

func (ClassModel) TableName() string {
	return "classes"
}

// Kolom yang boleh diubah oleh pemilik kelas.
const (
	ColumnName        = "name"
	ColumnDescription = "description"
)
