package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// DailyObservationRepository 일일 아동관찰数据访问接口
type DailyObservationRepository interface {
	ListByClassAndDate(ctx context.Context, classID int, date string) ([]model.DailyChildObservation, error)
	GetByID(ctx context.Context, id int) (*model.DailyChildObservation, error)
	Create(ctx context.Context, obs *model.DailyChildObservation) error
	UpdateObservation(ctx context.Context, id int, observation string) error
	Delete(ctx context.Context, id int) error
	// DeleteByChild 删除某儿童的全部当日观察并返回删除条数
	DeleteByChild(ctx context.Context, childID int) (int64, error)
}

type dailyObservationRepo struct {
	db *gorm.DB
}

// NewDailyObservationRepo 创建 DailyObservationRepository 实例
func NewDailyObservationRepo(db *gorm.DB) DailyObservationRepository {
	return &dailyObservationRepo{db: db}
}

func (r *dailyObservationRepo) ListByClassAndDate(ctx context.Context, classID int, date string) ([]model.DailyChildObservation, error) {
	var list []model.DailyChildObservation
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND date = ?", classID, date).
		Order("child_id ASC").
		Find(&list).Error
	return list, err
}

func (r *dailyObservationRepo) GetByID(ctx context.Context, id int) (*model.DailyChildObservation, error) {
	var obs model.DailyChildObservation
	if err := r.db.WithContext(ctx).First(&obs, id).Error; err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *dailyObservationRepo) Create(ctx context.Context, obs *model.DailyChildObservation) error {
	return r.db.WithContext(ctx).Create(obs).Error
}

func (r *dailyObservationRepo) UpdateObservation(ctx context.Context, id int, observation string) error {
	return r.db.WithContext(ctx).
		Model(&model.DailyChildObservation{}).
		Where("id = ?", id).
		Update("observation", observation).Error
}

func (r *dailyObservationRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.DailyChildObservation{}, id).Error
}

func (r *dailyObservationRepo) DeleteByChild(ctx context.Context, childID int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Delete(&model.DailyChildObservation{})
	return res.RowsAffected, res.Error
}
