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
	"github.com/hungryangel/early-childhood-auto-doc/pkg/dateutil"
)

// ChildService 儿童（아동）业务接口
type ChildService interface {
	List(ctx context.Context) ([]model.ChildWithClass, error)
	Create(ctx context.Context, req *dto.CreateChildRequest) (*model.Child, error)
	// Delete 级联删除：发育评价 → 月别观察记录 → 儿童本体，单事务完成
	Delete(ctx context.Context, id int) (*dto.DeleteChildResponse, error)
}

type childService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChildService 创建 ChildService 实例
func NewChildService(repo *repository.Repository, logger *zap.Logger) ChildService {
	return &childService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *childService) List(ctx context.Context) ([]model.ChildWithClass, error) {
	children, err := s.repo.Child.ListWithClass(ctx)
	if err != nil {
		s.logger.Error("列出儿童失败", zap.Error(err))
		return nil, err
	}
	return children, nil
}

// ────────────────────── Create ──────────────────────

func (s *childService) Create(ctx context.Context, req *dto.CreateChildRequest) (*model.Child, error) {
	if req.Name == nil {
		return nil, apperr.BadRequest("MISSING_NAME", "Name is required")
	}
	name := strings.TrimSpace(*req.Name)
	if name == "" {
		return nil, apperr.BadRequest("EMPTY_NAME", "Name cannot be empty")
	}

	if req.Birthdate == nil || *req.Birthdate == "" {
		return nil, apperr.BadRequest("MISSING_BIRTHDATE", "Birthdate is required and must be a string")
	}
	if !dateutil.ValidDate(*req.Birthdate) {
		return nil, apperr.BadRequest("INVALID_BIRTHDATE", "Birthdate must be a valid date in YYYY-MM-DD format")
	}

	if req.ClassID == nil || *req.ClassID <= 0 {
		return nil, apperr.BadRequest("INVALID_CLASS_ID", "Valid class ID is required")
	}

	if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("CLASS_NOT_FOUND", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("classId", *req.ClassID), zap.Error(err))
		return nil, err
	}

	child := &model.Child{
		Name:      name,
		Birthdate: *req.Birthdate,
		ClassID:   *req.ClassID,
	}
	if err := s.repo.Child.Create(ctx, child); err != nil {
		s.logger.Error("登记儿童失败", zap.Error(err))
		return nil, err
	}
	return child, nil
}

// ────────────────────── Delete ──────────────────────

func (s *childService) Delete(ctx context.Context, id int) (*dto.DeleteChildResponse, error) {
	child, err := s.repo.Child.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CHILD_NOT_FOUND", "Child not found")
		}
		s.logger.Error("查询儿童失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	var evalCount, logCount, obsCount, dailyCount int64
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		var txErr error
		if evalCount, txErr = txRepo.DevelopmentEvaluation.DeleteByChild(ctx, id); txErr != nil {
			return txErr
		}
		if logCount, txErr = txRepo.ObservationLog.DeleteByChild(ctx, id); txErr != nil {
			return txErr
		}
		// 관찰기록/일일관찰对 children 有外键约束，须一并清除
		if obsCount, txErr = txRepo.Observation.DeleteByChild(ctx, id); txErr != nil {
			return txErr
		}
		if dailyCount, txErr = txRepo.DailyObservation.DeleteByChild(ctx, id); txErr != nil {
			return txErr
		}
		return txRepo.Child.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("级联删除儿童失败", zap.Int("id", id), zap.Error(err))
		return nil, apperr.Internal("DATABASE_ERROR", "Internal server error: Failed to delete child and related records")
	}

	s.logger.Info("儿童已删除",
		zap.Int("id", id),
		zap.String("name", child.Name),
		zap.Int64("evaluations", evalCount),
		zap.Int64("observationLogs", logCount),
		zap.Int64("observations", obsCount),
		zap.Int64("dailyObservations", dailyCount))

	return &dto.DeleteChildResponse{
		Message:      "Child and all related records deleted successfully",
		DeletedChild: child,
		DeletedRecordCounts: dto.DeletedRecordCounts{
			DevelopmentEvaluations: evalCount,
			ObservationLogs:        logCount,
		},
	}, nil
}
