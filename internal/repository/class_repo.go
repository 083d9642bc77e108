package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	List(ctx context.Context) ([]model.Class, error)
	GetByID(ctx context.Context, id int) (*model.Class, error)
	Create(ctx context.Context, class *model.Class) error
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id int) error
	First(ctx context.Context) (*model.Class, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).Order("id").Find(&classes).Error
	return classes, err
}

func (r *classRepo) GetByID(ctx context.Context, id int) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Class{}, id).Error
}

// First 返回最早创建的班级（单园所部署时的默认班级）
func (r *classRepo) First(ctx context.Context) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).Order("id").First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}
