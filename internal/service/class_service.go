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

// ClassService 班级（우리반）业务接口
type ClassService interface {
	List(ctx context.Context) ([]model.Class, error)
	GetByID(ctx context.Context, id int) (*model.Class, error)
	Create(ctx context.Context, req *dto.CreateClassRequest) (*model.Class, error)
	Update(ctx context.Context, id int, req *dto.UpdateClassRequest) (*model.Class, error)
	Delete(ctx context.Context, id int) (*model.Class, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *classService) List(ctx context.Context) ([]model.Class, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("列出班级失败", zap.Error(err))
		return nil, err
	}
	return classes, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *classService) GetByID(ctx context.Context, id int) (*model.Class, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return class, nil
}

// ────────────────────── Create ──────────────────────

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*model.Class, error) {
	if req.Age == nil {
		return nil, apperr.BadRequest("MISSING_REQUIRED_FIELD", "Age is required")
	}
	if req.ClassName == nil {
		return nil, apperr.BadRequest("MISSING_REQUIRED_FIELD", "Class name is required")
	}

	age := strings.TrimSpace(*req.Age)
	className := strings.TrimSpace(*req.ClassName)
	if age == "" {
		return nil, apperr.BadRequest("EMPTY_FIELD", "Age cannot be empty")
	}
	if className == "" {
		return nil, apperr.BadRequest("EMPTY_FIELD", "Class name cannot be empty")
	}

	class := &model.Class{Age: age, ClassName: className}
	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, err
	}
	return class, nil
}

// ────────────────────── Update ──────────────────────

func (s *classService) Update(ctx context.Context, id int, req *dto.UpdateClassRequest) (*model.Class, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if req.Age != nil {
		age := strings.TrimSpace(*req.Age)
		if age == "" {
			return nil, apperr.BadRequest("EMPTY_FIELD", "Age cannot be empty")
		}
		class.Age = age
	}
	if req.ClassName != nil {
		className := strings.TrimSpace(*req.ClassName)
		if className == "" {
			return nil, apperr.BadRequest("EMPTY_FIELD", "Class name cannot be empty")
		}
		class.ClassName = className
	}

	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.logger.Error("更新班级失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return class, nil
}

// ────────────────────── Delete ──────────────────────

func (s *classService) Delete(ctx context.Context, id int) (*model.Class, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Class.Delete(ctx, id); err != nil {
		s.logger.Error("删除班级失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return class, nil
}
