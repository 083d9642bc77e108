package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Class                 ClassRepository
	Child                 ChildRepository
	ObservationLog        ObservationLogRepository
	DevelopmentEvaluation DevelopmentEvaluationRepository
	ActivityPlan          ActivityPlanRepository
	ChildcareLog          ChildcareLogRepository
	DailyObservation      DailyObservationRepository
	Observation           ObservationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:                    db,
		Class:                 NewClassRepo(db),
		Child:                 NewChildRepo(db),
		ObservationLog:        NewObservationLogRepo(db),
		DevelopmentEvaluation: NewDevelopmentEvaluationRepo(db),
		ActivityPlan:          NewActivityPlanRepo(db),
		ChildcareLog:          NewChildcareLogRepo(db),
		DailyObservation:      NewDailyObservationRepo(db),
		Observation:           NewObservationRepo(db),
	}
}

// Transaction 在单个数据库事务内执行 fn；fn 返回错误时整体回滚
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		// 无底层连接时退化为直接执行
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
