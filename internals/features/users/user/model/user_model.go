package model

import (
	"time"

	"classmanager_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName  string         `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	Password  string         `gorm:"not null" json:"-"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName  string         `gorm:"column:full_name;size:120;not null" json:"full_name"`
	Role      constants.Role `gorm:"type:varchar(20);not null;check:role IN ('teacher','student')" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// Kolom yang boleh diubah lewat update profil. Role, username dan password tidak termasuk.
const (
	ColumnEmail    = "email"
	ColumnFullName = "full_name"
)
