package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/ai"
	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/dateutil"
)

// GenerationService AI 문서 생성业务接口
type GenerationService interface {
	// GenerateActivityPlan 生成월간 활동계획并持久化到第一个班级
	GenerateActivityPlan(ctx context.Context, req *dto.GenerateActivityPlanRequest) (*dto.GenerateActivityPlanResponse, error)
	// GenerateEvaluation 生成당일 평가 및 지원계획全文
	GenerateEvaluation(ctx context.Context, req *dto.GenerateEvaluationRequest) (*dto.GenerateEvaluationResponse, error)
	// GenerateChildObservation 生成개별 아동관찰 내용
	GenerateChildObservation(ctx context.Context, req *dto.GenerateChildObservationRequest) (*dto.GenerateChildObservationResponse, error)
}

type generationService struct {
	repo    *repository.Repository
	gen     ai.TextGenerator
	timeout time.Duration
	logger  *zap.Logger
}

// NewGenerationService 创建 GenerationService 实例；timeout 为单次远程生成的上限
func NewGenerationService(repo *repository.Repository, gen ai.TextGenerator, timeout time.Duration, logger *zap.Logger) GenerationService {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &generationService{repo: repo, gen: gen, timeout: timeout, logger: logger}
}

// ────────────────────── GenerateActivityPlan ──────────────────────

func (s *generationService) GenerateActivityPlan(ctx context.Context, req *dto.GenerateActivityPlanRequest) (*dto.GenerateActivityPlanResponse, error) {
	if req.Theme == nil || strings.TrimSpace(*req.Theme) == "" {
		return nil, apperr.BadRequest("INVALID_THEME", "Theme is required and must be a non-empty string")
	}
	if req.StartDate == nil || !dateutil.ValidDate(*req.StartDate) {
		return nil, apperr.BadRequest("INVALID_START_DATE", "startDate must be a valid date in YYYY-MM-DD format")
	}
	if req.EndDate == nil || !dateutil.ValidDate(*req.EndDate) {
		return nil, apperr.BadRequest("INVALID_END_DATE", "endDate must be a valid date in YYYY-MM-DD format")
	}
	if req.AgeGroup == nil || (*req.AgeGroup != "0-2" && *req.AgeGroup != "3-5") {
		return nil, apperr.BadRequest("INVALID_AGE_GROUP", `Age group must be either "0-2" or "3-5"`)
	}

	// 单园所默认：活动计划归属系统内第一个班级
	firstClass, err := s.repo.Class.First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("NO_CLASSES_FOUND", "클래스 정보가 없습니다. 우리반 관리를 먼저 설정하세요.")
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	windows := dateutil.WeekWindows(dateutil.MustParse(*req.StartDate), dateutil.MustParse(*req.EndDate))
	prompt := ai.ActivityPlanPrompt(strings.TrimSpace(*req.Theme), *req.StartDate, *req.EndDate, *req.AgeGroup, windows)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.GenerateText(genCtx, prompt)
	if err != nil {
		s.logger.Error("活动计划生成失败", zap.Error(err))
		return nil, apperr.Internal("GENERATION_FAILED", "Failed to generate activity plan due to AI service error")
	}

	parsed := ai.ParsePlanJSON(text)
	if !parsed.Parsed {
		s.logger.Warn("活动计划输出无法解析为 JSON，按空计划保存", zap.String("theme", *req.Theme))
	}

	plan := &model.ActivityPlan{
		ClassID:   firstClass.ID,
		Theme:     strings.TrimSpace(*req.Theme),
		StartDate: *req.StartDate,
		EndDate:   *req.EndDate,
		Age:       *req.AgeGroup,
		Plans:     model.RawJSON(parsed.Plan),
	}
	if err := s.repo.ActivityPlan.Create(ctx, plan); err != nil {
		s.logger.Error("保存生成的活动计划失败", zap.Error(err))
		return nil, err
	}

	return &dto.GenerateActivityPlanResponse{Success: true, Plan: parsed.Plan}, nil
}

// ────────────────────── GenerateEvaluation ──────────────────────

func (s *generationService) GenerateEvaluation(ctx context.Context, req *dto.GenerateEvaluationRequest) (*dto.GenerateEvaluationResponse, error) {
	if req.Keywords == nil || strings.TrimSpace(*req.Keywords) == "" {
		return nil, apperr.BadRequest("MISSING_KEYWORDS", "Keywords are required and must be a non-empty string")
	}
	if req.Date == nil || !dateutil.ValidDate(*req.Date) {
		return nil, apperr.BadRequest("INVALID_DATE", "Date is required and must be a string in YYYY-MM-DD format")
	}
	if req.AgeGroup == nil || (*req.AgeGroup != "0-2" && *req.AgeGroup != "3-5") {
		return nil, apperr.BadRequest("INVALID_AGE_GROUP", `Age group must be either "0-2" or "3-5"`)
	}

	firstClass, err := s.repo.Class.First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("NO_CLASSES_FOUND", "No class found in the system")
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	yesterday := dateutil.AddDays(*req.Date, -1)
	tomorrow := dateutil.AddDays(*req.Date, 1)

	// 어제 지원계획：缺失不阻断生成
	previousPlan := ""
	if prev, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, firstClass.ID, yesterday); err == nil {
		previousPlan = prev.SupportPlan
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("查询前日日志失败", zap.Error(err))
	}

	// 내일 활동계획：优先活动计划，兜底次日日志的지원계획
	tomorrowPlan := ""
	if plan, err := s.repo.ActivityPlan.FindCovering(ctx, firstClass.ID, tomorrow); err == nil {
		tomorrowPlan = flattenPlans(plan.Plans)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("查询次日活动计划失败", zap.Error(err))
	}
	if tomorrowPlan == "" {
		if next, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, firstClass.ID, tomorrow); err == nil {
			tomorrowPlan = next.SupportPlan
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("查询次日日志失败", zap.Error(err))
		}
	}

	prompt := ai.EvaluationPrompt(strings.TrimSpace(*req.Keywords), *req.AgeGroup, previousPlan, tomorrowPlan)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.GenerateText(genCtx, prompt)
	if err != nil {
		s.logger.Error("评价生成失败", zap.Error(err))
		return nil, apperr.Internal("GENERATION_FAILED", "Failed to generate evaluation due to AI service error")
	}
	// 生成文本含평가/아동관찰两段；响应只保留평가 및 지원계획段
	evaluation := ai.ExtractEvaluationSection(text)
	if evaluation == "" {
		return nil, apperr.Internal("GENERATION_FAILED", "Failed to generate evaluation content")
	}

	return &dto.GenerateEvaluationResponse{Success: true, Evaluation: evaluation}, nil
}

// ────────────────────── GenerateChildObservation ──────────────────────

func (s *generationService) GenerateChildObservation(ctx context.Context, req *dto.GenerateChildObservationRequest) (*dto.GenerateChildObservationResponse, error) {
	if req.ChildName == nil || strings.TrimSpace(*req.ChildName) == "" {
		return nil, apperr.BadRequest("MISSING_CHILD_NAME", "Child name is required and must be a non-empty string")
	}
	if req.Keywords == nil || strings.TrimSpace(*req.Keywords) == "" {
		return nil, apperr.BadRequest("MISSING_KEYWORDS", "Keywords are required and must be a non-empty string")
	}
	if req.AgeGroup == nil || (*req.AgeGroup != "0-2" && *req.AgeGroup != "3-5") {
		return nil, apperr.BadRequest("INVALID_AGE_GROUP", `Age group must be either "0-2" or "3-5"`)
	}
	if req.Date != "" && !dateutil.ValidDate(req.Date) {
		return nil, apperr.BadRequest("INVALID_DATE_FORMAT", "Date must be in YYYY-MM-DD format if provided")
	}
	if req.Curriculum == nil || *req.Curriculum == "" {
		return nil, apperr.BadRequest("MISSING_CURRICULUM", "Curriculum is required and must be a string")
	}

	prompt := ai.ChildObservationPrompt(
		strings.TrimSpace(*req.ChildName), *req.AgeGroup,
		strings.TrimSpace(*req.Keywords), req.Date, *req.Curriculum)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.GenerateText(genCtx, prompt)
	if err != nil {
		s.logger.Error("아동관찰 생성失败", zap.Error(err))
		return nil, apperr.Internal("GENERATION_FAILED", "Failed to generate observation content")
	}
	observation := strings.TrimSpace(text)
	if observation == "" {
		return nil, apperr.Internal("GENERATION_FAILED", "Failed to generate observation content")
	}

	return &dto.GenerateChildObservationResponse{Success: true, Observation: observation}, nil
}

// ── 内部辅助方法 ──

// flattenPlans 把计划 JSON 数组压平成提示词可用的一行文本
func flattenPlans(raw model.RawJSON) string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, string(item))
	}
	return strings.Join(parts, ", ")
}
