package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// ChildRepository 儿童数据访问接口
type ChildRepository interface {
	ListWithClass(ctx context.Context) ([]model.ChildWithClass, error)
	GetByID(ctx context.Context, id int) (*model.Child, error)
	Create(ctx context.Context, child *model.Child) error
	Delete(ctx context.Context, id int) error
}

type childRepo struct {
	db *gorm.DB
}

// NewChildRepo 创建 ChildRepository 实例
func NewChildRepo(db *gorm.DB) ChildRepository {
	return &childRepo{db: db}
}

// ListWithClass 列出全部儿童并联结班级名称/年龄段
func (r *childRepo) ListWithClass(ctx context.Context) ([]model.ChildWithClass, error) {
	var result []model.ChildWithClass
	err := r.db.WithContext(ctx).
		Table("children").
		Select(`children.id, children.name, children.birthdate, children.class_id,
			classes.class_name, classes.age AS class_age`).
		Joins("INNER JOIN classes ON children.class_id = classes.id").
		Order("children.id").
		Scan(&result).Error
	return result, err
}

func (r *childRepo) GetByID(ctx context.Context, id int) (*model.Child, error) {
	var child model.Child
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&child).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepo) Create(ctx context.Context, child *model.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Child{}, id).Error
}
