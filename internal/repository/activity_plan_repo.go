package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// ActivityPlanFilter 활동계획列表查询条件
type ActivityPlanFilter struct {
	ClassID *int
	Limit   int
	Offset  int
	Sort    string // theme | startDate | endDate | age | createdAt
	Order   string // asc | desc
}

// ActivityPlanRepository 활동계획数据访问接口
type ActivityPlanRepository interface {
	List(ctx context.Context, filter ActivityPlanFilter) ([]model.ActivityPlan, error)
	GetByID(ctx context.Context, id int) (*model.ActivityPlan, error)
	Create(ctx context.Context, plan *model.ActivityPlan) error
	Update(ctx context.Context, plan *model.ActivityPlan) error
	Delete(ctx context.Context, id int) error
	// FindCovering 查找某班级起止日期覆盖 date 的第一条计划
	FindCovering(ctx context.Context, classID int, date string) (*model.ActivityPlan, error)
}

type activityPlanRepo struct {
	db *gorm.DB
}

// NewActivityPlanRepo 创建 ActivityPlanRepository 实例
func NewActivityPlanRepo(db *gorm.DB) ActivityPlanRepository {
	return &activityPlanRepo{db: db}
}

// 列名白名单：外部 sort 参数到数据库列的映射
var planSortColumns = map[string]string{
	"theme":     "theme",
	"startDate": "start_date",
	"endDate":   "end_date",
	"age":       "age",
	"createdAt": "created_at",
}

func (r *activityPlanRepo) List(ctx context.Context, filter ActivityPlanFilter) ([]model.ActivityPlan, error) {
	q := r.db.WithContext(ctx).Model(&model.ActivityPlan{})
	if filter.ClassID != nil {
		q = q.Where("class_id = ?", *filter.ClassID)
	}

	col, ok := planSortColumns[filter.Sort]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if filter.Order == "asc" {
		dir = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	var plans []model.ActivityPlan
	err := q.Order(col + " " + dir).
		Limit(limit).
		Offset(filter.Offset).
		Find(&plans).Error
	return plans, err
}

func (r *activityPlanRepo) GetByID(ctx context.Context, id int) (*model.ActivityPlan, error) {
	var plan model.ActivityPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *activityPlanRepo) Create(ctx context.Context, plan *model.ActivityPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *activityPlanRepo) Update(ctx context.Context, plan *model.ActivityPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *activityPlanRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.ActivityPlan{}, id).Error
}

func (r *activityPlanRepo) FindCovering(ctx context.Context, classID int, date string) (*model.ActivityPlan, error) {
	var plan model.ActivityPlan
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND start_date <= ? AND end_date >= ?", classID, date, date).
		Order("id").
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
