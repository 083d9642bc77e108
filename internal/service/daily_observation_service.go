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

// DailyObservationService 일일 아동관찰业务接口
type DailyObservationService interface {
	List(ctx context.Context, date string, classID int) ([]model.DailyChildObservation, error)
	Create(ctx context.Context, req *dto.CreateDailyObservationRequest) (*model.DailyChildObservation, error)
	Update(ctx context.Context, id int, req *dto.UpdateDailyObservationRequest) error
	Delete(ctx context.Context, id int) error
}

type dailyObservationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDailyObservationService 创建 DailyObservationService 实例
func NewDailyObservationService(repo *repository.Repository, logger *zap.Logger) DailyObservationService {
	return &dailyObservationService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *dailyObservationService) List(ctx context.Context, date string, classID int) ([]model.DailyChildObservation, error) {
	if !dateutil.ValidDate(date) {
		return nil, apperr.BadRequest("INVALID_DATE", "Invalid date provided")
	}

	list, err := s.repo.DailyObservation.ListByClassAndDate(ctx, classID, date)
	if err != nil {
		s.logger.Error("列出当日观察失败", zap.String("date", date), zap.Int("classId", classID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// ────────────────────── Create ──────────────────────

func (s *dailyObservationService) Create(ctx context.Context, req *dto.CreateDailyObservationRequest) (*model.DailyChildObservation, error) {
	if req.ClassID == nil || *req.ClassID == 0 {
		return nil, apperr.BadRequest("MISSING_CLASS_ID", "Class ID is required")
	}
	if req.Date == nil || *req.Date == "" {
		return nil, apperr.BadRequest("MISSING_DATE", "Date is required")
	}
	if req.ChildID == nil || *req.ChildID == 0 {
		return nil, apperr.BadRequest("MISSING_CHILD_ID", "Child ID is required")
	}
	if req.Observation == nil || strings.TrimSpace(*req.Observation) == "" {
		return nil, apperr.BadRequest("INVALID_OBSERVATION", "Observation must be a non-empty string")
	}
	if !dateutil.ValidDate(*req.Date) {
		return nil, apperr.BadRequest("INVALID_DATE", "Invalid date provided")
	}

	if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("CLASS_NOT_FOUND", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("classId", *req.ClassID), zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Child.GetByID(ctx, *req.ChildID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("CHILD_NOT_FOUND", "Child not found")
		}
		s.logger.Error("查询儿童失败", zap.Int("childId", *req.ChildID), zap.Error(err))
		return nil, err
	}

	obs := &model.DailyChildObservation{
		ClassID:     *req.ClassID,
		Date:        *req.Date,
		ChildID:     *req.ChildID,
		Observation: strings.TrimSpace(*req.Observation),
	}
	if err := s.repo.DailyObservation.Create(ctx, obs); err != nil {
		s.logger.Error("创建当日观察失败", zap.Error(err))
		return nil, err
	}
	return obs, nil
}

// ────────────────────── Update ──────────────────────

func (s *dailyObservationService) Update(ctx context.Context, id int, req *dto.UpdateDailyObservationRequest) error {
	if req.Observation == nil || strings.TrimSpace(*req.Observation) == "" {
		return apperr.BadRequest("INVALID_OBSERVATION", "Observation is required and must be a non-empty string")
	}

	if _, err := s.repo.DailyObservation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("RECORD_NOT_FOUND", "Observation record not found")
		}
		s.logger.Error("查询当日观察失败", zap.Int("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.DailyObservation.UpdateObservation(ctx, id, strings.TrimSpace(*req.Observation)); err != nil {
		s.logger.Error("更新当日观察失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *dailyObservationService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.DailyObservation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("RECORD_NOT_FOUND", "Observation record not found")
		}
		s.logger.Error("查询当日观察失败", zap.Int("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.DailyObservation.Delete(ctx, id); err != nil {
		s.logger.Error("删除当日观察失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
