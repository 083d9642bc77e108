package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// ChildcareLogFilter 보육일지列表查询条件
type ChildcareLogFilter struct {
	ClassID   *int
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// ChildcareLogRepository 보육일지数据访问接口
type ChildcareLogRepository interface {
	List(ctx context.Context, filter ChildcareLogFilter) ([]model.ChildcareLog, error)
	ListByDate(ctx context.Context, date string, classID *int) ([]model.ChildcareLog, error)
	ListByRange(ctx context.Context, startDate, endDate string, classID *int) ([]model.ChildcareLog, error)
	GetByClassAndDate(ctx context.Context, classID int, date string) (*model.ChildcareLog, error)
	// Upsert 以 (class_id, date) 为冲突键的单语句原子插入或更新
	Upsert(ctx context.Context, log *model.ChildcareLog) error
	UpdateEvaluationContent(ctx context.Context, classID int, date, content string) error
}

type childcareLogRepo struct {
	db *gorm.DB
}

// NewChildcareLogRepo 创建 ChildcareLogRepository 实例
func NewChildcareLogRepo(db *gorm.DB) ChildcareLogRepository {
	return &childcareLogRepo{db: db}
}

func (r *childcareLogRepo) List(ctx context.Context, filter ChildcareLogFilter) ([]model.ChildcareLog, error) {
	q := r.db.WithContext(ctx).Model(&model.ChildcareLog{})
	if filter.ClassID != nil {
		q = q.Where("class_id = ?", *filter.ClassID)
	}
	if filter.StartDate != "" {
		q = q.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("date <= ?", filter.EndDate)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	var logs []model.ChildcareLog
	err := q.Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&logs).Error
	return logs, err
}

func (r *childcareLogRepo) ListByDate(ctx context.Context, date string, classID *int) ([]model.ChildcareLog, error) {
	q := r.db.WithContext(ctx).Where("date = ?", date)
	if classID != nil {
		q = q.Where("class_id = ?", *classID)
	}
	var logs []model.ChildcareLog
	err := q.Order("created_at DESC").Find(&logs).Error
	return logs, err
}

// ListByRange 闭区间 [startDate, endDate] 查询，按日期升序
func (r *childcareLogRepo) ListByRange(ctx context.Context, startDate, endDate string, classID *int) ([]model.ChildcareLog, error) {
	q := r.db.WithContext(ctx).Where("date >= ? AND date <= ?", startDate, endDate)
	if classID != nil {
		q = q.Where("class_id = ?", *classID)
	}
	var logs []model.ChildcareLog
	err := q.Order("date ASC, created_at DESC").Find(&logs).Error
	return logs, err
}

func (r *childcareLogRepo) GetByClassAndDate(ctx context.Context, classID int, date string) (*model.ChildcareLog, error) {
	var log model.ChildcareLog
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND date = ?", classID, date).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Upsert 依赖 idx_childcare_logs_class_date 唯一索引，
// INSERT .. ON CONFLICT DO UPDATE 单语句完成，消除读后写竞态
func (r *childcareLogRepo) Upsert(ctx context.Context, log *model.ChildcareLog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "class_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"keywords", "evaluation", "support_plan", "schedule", "updated_at",
			}),
		}).
		Create(log).Error
}

func (r *childcareLogRepo) UpdateEvaluationContent(ctx context.Context, classID int, date, content string) error {
	return r.db.WithContext(ctx).
		Model(&model.ChildcareLog{}).
		Where("class_id = ? AND date = ?", classID, date).
		Updates(map[string]interface{}{
			"evaluation_content": content,
			"updated_at":         gorm.Expr("NOW()"),
		}).Error
}
