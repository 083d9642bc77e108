package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
)

// ObservationLogService 월별관찰기록业务接口
type ObservationLogService interface {
	List(ctx context.Context, childID int, startMonth, endMonth string) ([]model.ObservationLog, error)
	Create(ctx context.Context, req *dto.CreateObservationLogRequest) (*model.ObservationLog, error)
	Update(ctx context.Context, id int, req *dto.UpdateObservationLogRequest) (*model.ObservationLog, error)
	Delete(ctx context.Context, id int) (*model.ObservationLog, error)
}

type observationLogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewObservationLogService 创建 ObservationLogService 实例
func NewObservationLogService(repo *repository.Repository, logger *zap.Logger) ObservationLogService {
	return &observationLogService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *observationLogService) List(ctx context.Context, childID int, startMonth, endMonth string) ([]model.ObservationLog, error) {
	logs, err := s.repo.ObservationLog.List(ctx, repository.ObservationLogFilter{
		ChildID:    childID,
		StartMonth: startMonth,
		EndMonth:   endMonth,
	})
	if err != nil {
		s.logger.Error("列出观察记录失败", zap.Int("childId", childID), zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// ────────────────────── Create ──────────────────────

func (s *observationLogService) Create(ctx context.Context, req *dto.CreateObservationLogRequest) (*model.ObservationLog, error) {
	if req.ChildID == nil || *req.ChildID <= 0 {
		return nil, apperr.BadRequest("MISSING_CHILD_ID", "Valid childId is required")
	}
	if req.Month == nil || *req.Month == "" {
		return nil, apperr.BadRequest("MISSING_MONTH", "Month is required and must be a valid ISO date string")
	}
	if req.Keywords == nil || strings.TrimSpace(*req.Keywords) == "" {
		return nil, apperr.BadRequest("MISSING_KEYWORDS", "Keywords are required")
	}
	if req.Content == nil || strings.TrimSpace(*req.Content) == "" {
		return nil, apperr.BadRequest("MISSING_CONTENT", "Content is required")
	}

	log := &model.ObservationLog{
		ChildID:  *req.ChildID,
		Month:    strings.TrimSpace(*req.Month),
		Keywords: strings.TrimSpace(*req.Keywords),
		Content:  strings.TrimSpace(*req.Content),
	}
	if err := s.repo.ObservationLog.Create(ctx, log); err != nil {
		s.logger.Error("创建观察记录失败", zap.Error(err))
		return nil, err
	}
	return log, nil
}

// ────────────────────── Update ──────────────────────

func (s *observationLogService) Update(ctx context.Context, id int, req *dto.UpdateObservationLogRequest) (*model.ObservationLog, error) {
	log, err := s.repo.ObservationLog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Observation log not found")
		}
		s.logger.Error("查询观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if req.Month != nil {
		month := strings.TrimSpace(*req.Month)
		if month == "" {
			return nil, apperr.BadRequest("INVALID_MONTH", "Month must be a valid ISO date string")
		}
		log.Month = month
	}
	if req.Keywords != nil {
		keywords := strings.TrimSpace(*req.Keywords)
		if keywords == "" {
			return nil, apperr.BadRequest("INVALID_KEYWORDS", "Keywords cannot be empty")
		}
		log.Keywords = keywords
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, apperr.BadRequest("INVALID_CONTENT", "Content cannot be empty")
		}
		log.Content = content
	}

	if err := s.repo.ObservationLog.Update(ctx, log); err != nil {
		s.logger.Error("更新观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return log, nil
}

// ────────────────────── Delete ──────────────────────

func (s *observationLogService) Delete(ctx context.Context, id int) (*model.ObservationLog, error) {
	log, err := s.repo.ObservationLog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Observation log not found")
		}
		s.logger.Error("查询观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.ObservationLog.Delete(ctx, id); err != nil {
		s.logger.Error("删除观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return log, nil
}
