package repository

import (
	"context"

	"gorm.io/gorm"

	"classmanager_backend/internals/features/classes/classes/dto"
	"classmanager_backend/internals/features/classes/classes/model"
)

func CreateClass(ctx context.Context, db *gorm.DB, m *model.ClassModel) error {
	return db.WithContext(ctx).Create(m).Error
}

func FindClassByID(ctx context.Context, db *gorm.DB, id uint) (*model.ClassModel, error) {
	var m model.ClassModel
	if err := db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateClassColumns: set kolom statis {name, description}, tidak pernah teacher_id.
func UpdateClassColumns(ctx context.Context, db *gorm.DB, id uint, name, description string) (bool, error) {
	res := db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			model.ColumnName:        name,
			model.ColumnDescription: description,
		})
	return res.RowsAffected > 0, res.Error
}

// DeleteClass; class_enrollments ikut terhapus via FK cascade.
func DeleteClass(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	res := db.WithContext(ctx).Delete(&model.ClassModel{}, id)
	return res.RowsAffected > 0, res.Error
}

func GetClassDetail(ctx context.Context, db *gorm.DB, id uint) (*dto.ClassDetail, error) {
	var out dto.ClassDetail
	res := db.WithContext(ctx).
		Table("classes AS c").
		Select("c.id, c.name, c.description, c.teacher_id, u.full_name AS teacher_name, c.created_at, c.updated_at").
		Joins("JOIN users AS u ON u.id = c.teacher_id").
		Where("c.id = ?", id).
		Limit(1).
		Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

// ListClassesByTeacher: kelas milik guru + COUNT enrollment (LEFT JOIN, kelas kosong = 0).
func ListClassesByTeacher(ctx context.Context, db *gorm.DB, teacherID uint) ([]dto.ClassSummary, error) {
	rows := make([]dto.ClassSummary, 0)
	err := db.WithContext(ctx).
		Table("classes AS c").
		Select(`c.id, c.name, c.description, c.teacher_id, u.full_name AS teacher_name,
			COUNT(ce.id) AS student_count, c.created_at`).
		Joins("JOIN users AS u ON u.id = c.teacher_id").
		Joins("LEFT JOIN class_enrollments AS ce ON ce.class_id = c.id").
		Where("c.teacher_id = ?", teacherID).
		Group("c.id, c.name, c.description, c.teacher_id, u.full_name, c.created_at").
		Order("c.id ASC").
		Scan(&rows).Error
	return rows, err
}
