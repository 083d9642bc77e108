package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// ObservationFilter 관찰기록列表查询条件
type ObservationFilter struct {
	ChildID *int
	Month   string // YYYY-MM，按日期前缀过滤
	Domain  string
	Tags    []string // 任一标签命中即可
	Search  string   // summary/detail 模糊匹配
	Limit   int
	Offset  int
}

// DailyCount 按日期聚合的记录数
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ObservationRepository 관찰기록数据访问接口
type ObservationRepository interface {
	List(ctx context.Context, filter ObservationFilter) ([]model.Observation, int64, error)
	DailyCounts(ctx context.Context, filter ObservationFilter) ([]DailyCount, error)
	GetByID(ctx context.Context, id int) (*model.Observation, error)
	Create(ctx context.Context, obs *model.Observation) error
	Update(ctx context.Context, obs *model.Observation) error
	Delete(ctx context.Context, id int) error
	DeleteByChild(ctx context.Context, childID int) (int64, error)
}

type observationRepo struct {
	db *gorm.DB
}

// NewObservationRepo 创建 ObservationRepository 实例
func NewObservationRepo(db *gorm.DB) ObservationRepository {
	return &observationRepo{db: db}
}

// applyFilter 组装过滤条件，List 与 DailyCounts 共用
func (r *observationRepo) applyFilter(q *gorm.DB, filter ObservationFilter) *gorm.DB {
	if filter.ChildID != nil {
		q = q.Where("child_id = ?", *filter.ChildID)
	}
	if filter.Month != "" {
		q = q.Where("date LIKE ?", filter.Month+"%")
	}
	if filter.Domain != "" {
		q = q.Where("domain = ?", filter.Domain)
	}
	if len(filter.Tags) > 0 {
		// JSONB 包含：任一标签命中
		cond := r.db.Session(&gorm.Session{NewDB: true})
		for i, tag := range filter.Tags {
			if i == 0 {
				cond = cond.Where("tags @> ?", `["`+tag+`"]`)
			} else {
				cond = cond.Or("tags @> ?", `["`+tag+`"]`)
			}
		}
		q = q.Where(cond)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("summary LIKE ? OR detail LIKE ?", like, like)
	}
	return q
}

func (r *observationRepo) List(ctx context.Context, filter ObservationFilter) ([]model.Observation, int64, error) {
	base := r.applyFilter(r.db.WithContext(ctx).Model(&model.Observation{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var list []model.Observation
	err := base.Order("date DESC, time DESC, id DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// DailyCounts 忽略分页，对命中全集按日期聚合
func (r *observationRepo) DailyCounts(ctx context.Context, filter ObservationFilter) ([]DailyCount, error) {
	var counts []DailyCount
	err := r.applyFilter(r.db.WithContext(ctx).Model(&model.Observation{}), filter).
		Select("date, COUNT(*) AS count").
		Group("date").
		Order("date ASC").
		Scan(&counts).Error
	return counts, err
}

func (r *observationRepo) GetByID(ctx context.Context, id int) (*model.Observation, error) {
	var obs model.Observation
	err := r.db.WithContext(ctx).First(&obs, id).Error
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *observationRepo) Create(ctx context.Context, obs *model.Observation) error {
	return r.db.WithContext(ctx).Create(obs).Error
}

func (r *observationRepo) Update(ctx context.Context, obs *model.Observation) error {
	return r.db.WithContext(ctx).
		Model(&model.Observation{}).
		Where("id = ?", obs.ID).
		Updates(map[string]interface{}{
			"date":             obs.Date,
			"time":             obs.Time,
			"domain":           obs.Domain,
			"tags":             obs.Tags,
			"summary":          obs.Summary,
			"detail":           obs.Detail,
			"media":            obs.Media,
			"follow_ups":       obs.FollowUps,
			"linked_to_report": obs.LinkedToReport,
			"updated_at":       gorm.Expr("NOW()"),
		}).Error
}

func (r *observationRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Observation{}, id).Error
}

func (r *observationRepo) DeleteByChild(ctx context.Context, childID int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Delete(&model.Observation{})
	return res.RowsAffected, res.Error
}
