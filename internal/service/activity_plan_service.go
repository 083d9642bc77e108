package service

import (
	"context"
	"encoding/json"
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

// ActivityPlanService 활동계획业务接口
type ActivityPlanService interface {
	List(ctx context.Context, filter repository.ActivityPlanFilter) ([]model.ActivityPlan, error)
	Create(ctx context.Context, req *dto.CreateActivityPlanRequest) (*model.ActivityPlan, error)
	Update(ctx context.Context, id int, req *dto.UpdateActivityPlanRequest) (*model.ActivityPlan, error)
	Delete(ctx context.Context, id int) (*model.ActivityPlan, error)
}

type activityPlanService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityPlanService 创建 ActivityPlanService 实例
func NewActivityPlanService(repo *repository.Repository, logger *zap.Logger) ActivityPlanService {
	return &activityPlanService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *activityPlanService) List(ctx context.Context, filter repository.ActivityPlanFilter) ([]model.ActivityPlan, error) {
	plans, err := s.repo.ActivityPlan.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出活动计划失败", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

// ────────────────────── Create ──────────────────────

func (s *activityPlanService) Create(ctx context.Context, req *dto.CreateActivityPlanRequest) (*model.ActivityPlan, error) {
	if req.ClassID == nil || *req.ClassID == 0 {
		return nil, apperr.BadRequest("MISSING_CLASS_ID", "Class ID is required")
	}
	if req.Theme == nil || strings.TrimSpace(*req.Theme) == "" {
		return nil, apperr.BadRequest("INVALID_THEME", "Theme is required and must be a non-empty string")
	}
	if req.StartDate == nil || *req.StartDate == "" {
		return nil, apperr.BadRequest("INVALID_START_DATE", "Start date is required and must be an ISO date string")
	}
	if req.EndDate == nil || *req.EndDate == "" {
		return nil, apperr.BadRequest("INVALID_END_DATE", "End date is required and must be an ISO date string")
	}
	if req.Age == nil || strings.TrimSpace(*req.Age) == "" {
		return nil, apperr.BadRequest("INVALID_AGE", "Age is required and must be a non-empty string")
	}
	if len(req.Plans) == 0 {
		return nil, apperr.BadRequest("INVALID_PLANS", "Plans is required and must be a non-empty array")
	}

	if !dateutil.ValidDate(*req.StartDate) {
		return nil, apperr.BadRequest("INVALID_START_DATE_FORMAT", "Start date must be a valid ISO date string (YYYY-MM-DD)")
	}
	if !dateutil.ValidDate(*req.EndDate) {
		return nil, apperr.BadRequest("INVALID_END_DATE_FORMAT", "End date must be a valid ISO date string (YYYY-MM-DD)")
	}

	if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("CLASS_NOT_FOUND", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("classId", *req.ClassID), zap.Error(err))
		return nil, err
	}

	sanitized, err := sanitizePlans(req.Plans)
	if err != nil {
		return nil, err
	}
	plansJSON, _ := json.Marshal(sanitized)

	plan := &model.ActivityPlan{
		ClassID:   *req.ClassID,
		Theme:     strings.TrimSpace(*req.Theme),
		StartDate: *req.StartDate,
		EndDate:   *req.EndDate,
		Age:       strings.TrimSpace(*req.Age),
		Plans:     model.RawJSON(plansJSON),
	}
	if err := s.repo.ActivityPlan.Create(ctx, plan); err != nil {
		s.logger.Error("创建活动计划失败", zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// ────────────────────── Update ──────────────────────

func (s *activityPlanService) Update(ctx context.Context, id int, req *dto.UpdateActivityPlanRequest) (*model.ActivityPlan, error) {
	plan, err := s.repo.ActivityPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Activity plan not found")
		}
		s.logger.Error("查询活动计划失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if req.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.BadRequest("CLASS_NOT_FOUND", "Class not found")
			}
			s.logger.Error("查询班级失败", zap.Int("classId", *req.ClassID), zap.Error(err))
			return nil, err
		}
		plan.ClassID = *req.ClassID
	}
	if req.Theme != nil {
		theme := strings.TrimSpace(*req.Theme)
		if theme == "" {
			return nil, apperr.BadRequest("INVALID_THEME", "Theme must be a non-empty string")
		}
		plan.Theme = theme
	}
	if req.StartDate != nil {
		if !dateutil.ValidDate(*req.StartDate) {
			return nil, apperr.BadRequest("INVALID_START_DATE_FORMAT", "Start date must be a valid ISO date string (YYYY-MM-DD)")
		}
		plan.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		if !dateutil.ValidDate(*req.EndDate) {
			return nil, apperr.BadRequest("INVALID_END_DATE_FORMAT", "End date must be a valid ISO date string (YYYY-MM-DD)")
		}
		plan.EndDate = *req.EndDate
	}
	if req.Age != nil {
		age := strings.TrimSpace(*req.Age)
		if age == "" {
			return nil, apperr.BadRequest("INVALID_AGE", "Age must be a non-empty string")
		}
		plan.Age = age
	}
	if req.Plans != nil {
		if len(req.Plans) == 0 {
			return nil, apperr.BadRequest("INVALID_PLANS", "Plans must be a non-empty array")
		}
		sanitized, err := sanitizePlans(req.Plans)
		if err != nil {
			return nil, err
		}
		plansJSON, _ := json.Marshal(sanitized)
		plan.Plans = model.RawJSON(plansJSON)
	}

	if err := s.repo.ActivityPlan.Update(ctx, plan); err != nil {
		s.logger.Error("更新活动计划失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// ────────────────────── Delete ──────────────────────

func (s *activityPlanService) Delete(ctx context.Context, id int) (*model.ActivityPlan, error) {
	plan, err := s.repo.ActivityPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Activity plan not found")
		}
		s.logger.Error("查询活动计划失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.ActivityPlan.Delete(ctx, id); err != nil {
		s.logger.Error("删除活动计划失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// ── 内部辅助方法 ──

// sanitizePlans 校验扁平计划条目并修剪各字段；
// 任一必填字段缺失或为空即 INVALID_PLAN_FIELD
func sanitizePlans(entries []dto.PlanEntry) ([]dto.StoredPlanEntry, error) {
	result := make([]dto.StoredPlanEntry, 0, len(entries))
	for i, entry := range entries {
		fields := map[string]*string{
			"week":      entry.Week,
			"area":      entry.Area,
			"name":      entry.Name,
			"content":   entry.Content,
			"materials": entry.Materials,
		}
		for _, name := range []string{"week", "area", "name", "content", "materials"} {
			if fields[name] == nil || *fields[name] == "" {
				return nil, apperr.BadRequestf("INVALID_PLAN_FIELD",
					"Plan at index %d is missing required field '%s' or it's not a string", i, name)
			}
		}
		result = append(result, dto.StoredPlanEntry{
			Week:      strings.TrimSpace(*entry.Week),
			Area:      strings.TrimSpace(*entry.Area),
			Name:      strings.TrimSpace(*entry.Name),
			Content:   strings.TrimSpace(*entry.Content),
			Materials: strings.TrimSpace(*entry.Materials),
		})
	}
	return result, nil
}
