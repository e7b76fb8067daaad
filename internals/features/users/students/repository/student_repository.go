package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	studentModel "classmanager_backend/internals/features/users/students/model"
)

func CreateStudent(ctx context.Context, db *gorm.DB, s *studentModel.StudentModel) error {
	return db.WithContext(ctx).Create(s).Error
}

func FindStudentByID(ctx context.Context, db *gorm.DB, id uint) (*studentModel.StudentModel, error) {
	var s studentModel.StudentModel
	if err := db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func FindStudentByUserID(ctx context.Context, db *gorm.DB, userID uint) (*studentModel.StudentModel, error) {
	var s studentModel.StudentModel
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func UpdateStudentEmailByUserID(ctx context.Context, db *gorm.DB, userID uint, email string) error {
	return db.WithContext(ctx).
		Model(&studentModel.StudentModel{}).
		Where("user_id = ?", userID).
		Update("email", email).Error
}

// UpdateStudentNameByUserID: map dipakai supaya last_name kosong tetap ditulis.
func UpdateStudentNameByUserID(ctx context.Context, db *gorm.DB, userID uint, firstName, lastName string) error {
	return db.WithContext(ctx).
		Model(&studentModel.StudentModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"first_name": firstName, "last_name": lastName}).Error
}

// ListFilter untuk direktori siswa.
type ListFilter struct {
	Query  string
	Limit  int
	Offset int
}

// ListStudents mengembalikan halaman siswa + total sebelum paging.
func ListStudents(ctx context.Context, db *gorm.DB, f ListFilter) ([]studentModel.StudentModel, int64, error) {
	q := db.WithContext(ctx).Model(&studentModel.StudentModel{})
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []studentModel.StudentModel
	if err := q.Order("last_name ASC, first_name ASC, id ASC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
