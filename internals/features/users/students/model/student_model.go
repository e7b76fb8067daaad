package model

import (
	"time"

	userModel "classmanager_backend/internals/features/users/user/model"
)

// StudentModel adalah unit enrollment, terhubung 1:1 ke user ber-role student.
type StudentModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"column:first_name;size:120;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:120;not null;default:''" json:"last_name"`
	Email     string    `gorm:"size:255" json:"email"`
	UserID    *uint     `gorm:"column:user_id;uniqueIndex" json:"user_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}
