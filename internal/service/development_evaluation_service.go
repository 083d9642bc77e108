package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/dateutil"
)

// DevelopmentEvaluationService 발달평가业务接口
type DevelopmentEvaluationService interface {
	List(ctx context.Context, childID int, period string) ([]model.DevelopmentEvaluation, error)
	Create(ctx context.Context, req *dto.CreateDevelopmentEvaluationRequest) (*model.DevelopmentEvaluation, error)
	Update(ctx context.Context, id int, req *dto.UpdateDevelopmentEvaluationRequest) (*model.DevelopmentEvaluation, error)
	Delete(ctx context.Context, id int) (*model.DevelopmentEvaluation, error)
}

type developmentEvaluationService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewDevelopmentEvaluationService 创建 DevelopmentEvaluationService 实例
func NewDevelopmentEvaluationService(repo *repository.Repository, logger *zap.Logger) DevelopmentEvaluationService {
	return &developmentEvaluationService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── List ──────────────────────

func (s *developmentEvaluationService) List(ctx context.Context, childID int, period string) ([]model.DevelopmentEvaluation, error) {
	evals, err := s.repo.DevelopmentEvaluation.List(ctx, childID, period)
	if err != nil {
		s.logger.Error("列出发育评价失败", zap.Int("childId", childID), zap.Error(err))
		return nil, err
	}
	return evals, nil
}

// ────────────────────── Create ──────────────────────

func (s *developmentEvaluationService) Create(ctx context.Context, req *dto.CreateDevelopmentEvaluationRequest) (*model.DevelopmentEvaluation, error) {
	if req.ChildID == nil || *req.ChildID <= 0 {
		return nil, apperr.BadRequest("MISSING_CHILD_ID", "Valid childId is required")
	}
	if req.Period == nil || *req.Period == "" {
		return nil, apperr.BadRequest("MISSING_PERIOD", "Period is required")
	}
	if req.OverallCharacteristics == nil || *req.OverallCharacteristics == "" {
		return nil, apperr.BadRequest("MISSING_OVERALL_CHARACTERISTICS", "Overall characteristics is required")
	}
	if req.ParentMessage == nil || *req.ParentMessage == "" {
		return nil, apperr.BadRequest("MISSING_PARENT_MESSAGE", "Parent message is required")
	}

	child, err := s.repo.Child.GetByID(ctx, *req.ChildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CHILD_NOT_FOUND", "Child not found")
		}
		s.logger.Error("查询儿童失败", zap.Int("childId", *req.ChildID), zap.Error(err))
		return nil, err
	}

	// 评价时点月龄："N개월"
	months := dateutil.MonthsBetween(dateutil.MustParse(child.Birthdate), s.now())
	ageAtEvaluation := fmt.Sprintf("%d개월", months)

	// 聚合该儿童的全部月别观察记录
	logs, err := s.repo.ObservationLog.ListByChild(ctx, *req.ChildID)
	if err != nil {
		s.logger.Error("聚合观察记录失败", zap.Int("childId", *req.ChildID), zap.Error(err))
		return nil, err
	}
	blocks := make([]string, 0, len(logs))
	for _, log := range logs {
		blocks = append(blocks, fmt.Sprintf("키워드: %s\n내용: %s", log.Keywords, log.Content))
	}

	eval := &model.DevelopmentEvaluation{
		ChildID:                *req.ChildID,
		Period:                 strings.TrimSpace(*req.Period),
		OverallCharacteristics: strings.TrimSpace(*req.OverallCharacteristics),
		ParentMessage:          strings.TrimSpace(*req.ParentMessage),
		Observations:           strings.Join(blocks, "\n\n"),
		AgeAtEvaluation:        ageAtEvaluation,
	}
	if err := s.repo.DevelopmentEvaluation.Create(ctx, eval); err != nil {
		s.logger.Error("创建发育评价失败", zap.Error(err))
		return nil, err
	}
	return eval, nil
}

// ────────────────────── Update ──────────────────────

func (s *developmentEvaluationService) Update(ctx context.Context, id int, req *dto.UpdateDevelopmentEvaluationRequest) (*model.DevelopmentEvaluation, error) {
	eval, err := s.repo.DevelopmentEvaluation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Development evaluation not found")
		}
		s.logger.Error("查询发育评价失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if req.Period != nil {
		eval.Period = strings.TrimSpace(*req.Period)
	}
	if req.OverallCharacteristics != nil {
		eval.OverallCharacteristics = strings.TrimSpace(*req.OverallCharacteristics)
	}
	if req.ParentMessage != nil {
		eval.ParentMessage = strings.TrimSpace(*req.ParentMessage)
	}
	if req.Observations != nil {
		eval.Observations = strings.TrimSpace(*req.Observations)
	}
	if req.AgeAtEvaluation != nil {
		eval.AgeAtEvaluation = strings.TrimSpace(*req.AgeAtEvaluation)
	}

	if err := s.repo.DevelopmentEvaluation.Update(ctx, eval); err != nil {
		s.logger.Error("更新发育评价失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return eval, nil
}

// ────────────────────── Delete ──────────────────────

func (s *developmentEvaluationService) Delete(ctx context.Context, id int) (*model.DevelopmentEvaluation, error) {
	eval, err := s.repo.DevelopmentEvaluation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Development evaluation not found")
		}
		s.logger.Error("查询发育评价失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.DevelopmentEvaluation.Delete(ctx, id); err != nil {
		s.logger.Error("删除发育评价失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return eval, nil
}
