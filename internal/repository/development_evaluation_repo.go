package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// DevelopmentEvaluationRepository 발달평가数据访问接口
type DevelopmentEvaluationRepository interface {
	List(ctx context.Context, childID int, period string) ([]model.DevelopmentEvaluation, error)
	GetByID(ctx context.Context, id int) (*model.DevelopmentEvaluation, error)
	Create(ctx context.Context, eval *model.DevelopmentEvaluation) error
	Update(ctx context.Context, eval *model.DevelopmentEvaluation) error
	Delete(ctx context.Context, id int) error
	// DeleteByChild 删除某儿童的全部评价并返回删除条数
	DeleteByChild(ctx context.Context, childID int) (int64, error)
}

type developmentEvaluationRepo struct {
	db *gorm.DB
}

// NewDevelopmentEvaluationRepo 创建 DevelopmentEvaluationRepository 实例
func NewDevelopmentEvaluationRepo(db *gorm.DB) DevelopmentEvaluationRepository {
	return &developmentEvaluationRepo{db: db}
}

func (r *developmentEvaluationRepo) List(ctx context.Context, childID int, period string) ([]model.DevelopmentEvaluation, error) {
	q := r.db.WithContext(ctx).Where("child_id = ?", childID)
	if period != "" {
		q = q.Where("period = ?", period)
	}
	var evals []model.DevelopmentEvaluation
	err := q.Order("created_at DESC").Find(&evals).Error
	return evals, err
}

func (r *developmentEvaluationRepo) GetByID(ctx context.Context, id int) (*model.DevelopmentEvaluation, error) {
	var eval model.DevelopmentEvaluation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&eval).Error; err != nil {
		return nil, err
	}
	return &eval, nil
}

func (r *developmentEvaluationRepo) Create(ctx context.Context, eval *model.DevelopmentEvaluation) error {
	return r.db.WithContext(ctx).Create(eval).Error
}

func (r *developmentEvaluationRepo) Update(ctx context.Context, eval *model.DevelopmentEvaluation) error {
	return r.db.WithContext(ctx).Save(eval).Error
}

func (r *developmentEvaluationRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.DevelopmentEvaluation{}, id).Error
}

func (r *developmentEvaluationRepo) DeleteByChild(ctx context.Context, childID int) (int64, error) {
	res := r.db.WithContext(ctx).Where("child_id = ?", childID).Delete(&model.DevelopmentEvaluation{})
	return res.RowsAffected, res.Error
}
