package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// ObservationLogFilter 월별관찰기록查询条件
type ObservationLogFilter struct {
	ChildID    int
	StartMonth string
	EndMonth   string
}

// ObservationLogRepository 월별관찰기록数据访问接口
type ObservationLogRepository interface {
	List(ctx context.Context, filter ObservationLogFilter) ([]model.ObservationLog, error)
	ListByChild(ctx context.Context, childID int) ([]model.ObservationLog, error)
	GetByID(ctx context.Context, id int) (*model.ObservationLog, error)
	Create(ctx context.Context, log *model.ObservationLog) error
	Update(ctx context.Context, log *model.ObservationLog) error
	Delete(ctx context.Context, id int) error
	// DeleteByChild 删除某儿童的全部记录并返回删除条数
	DeleteByChild(ctx context.Context, childID int) (int64, error)
}

type observationLogRepo struct {
	db *gorm.DB
}

// NewObservationLogRepo 创建 ObservationLogRepository 实例
func NewObservationLogRepo(db *gorm.DB) ObservationLogRepository {
	return &observationLogRepo{db: db}
}

func (r *observationLogRepo) List(ctx context.Context, filter ObservationLogFilter) ([]model.ObservationLog, error) {
	q := r.db.WithContext(ctx).Where("child_id = ?", filter.ChildID)
	if filter.StartMonth != "" {
		q = q.Where("month >= ?", filter.StartMonth)
	}
	if filter.EndMonth != "" {
		q = q.Where("month <= ?", filter.EndMonth)
	}
	var logs []model.ObservationLog
	err := q.Order("month DESC, created_at DESC").Find(&logs).Error
	return logs, err
}

// ListByChild 聚合用：按儿童取全部记录，无排序要求
func (r *observationLogRepo) ListByChild(ctx context.Context, childID int) ([]model.ObservationLog, error) {
	var logs []model.ObservationLog
	err := r.db.WithContext(ctx).Where("child_id = ?", childID).Order("id ASC").Find(&logs).Error
	return logs, err
}

func (r *observationLogRepo) GetByID(ctx context.Context, id int) (*model.ObservationLog, error) {
	var log model.ObservationLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *observationLogRepo) Create(ctx context.Context, log *model.ObservationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *observationLogRepo) Update(ctx context.Context, log *model.ObservationLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *observationLogRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.ObservationLog{}, id).Error
}

func (r *observationLogRepo) DeleteByChild(ctx context.Context, childID int) (int64, error) {
	res := r.db.WithContext(ctx).Where("child_id = ?", childID).Delete(&model.ObservationLog{})
	return res.RowsAffected, res.Error
}
