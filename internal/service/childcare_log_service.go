package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/internal/schedule"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/dateutil"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/kvstore"
)

// scheduleTemplateKey 班级固定日程模板的 KV 键
func scheduleTemplateKey(classID int) string {
	return fmt.Sprintf("fixedSchedule_%d", classID)
}

// ChildcareLogService 보육일지业务接口
type ChildcareLogService interface {
	List(ctx context.Context, filter repository.ChildcareLogFilter) ([]model.ChildcareLog, error)
	GetByDate(ctx context.Context, date string, classID *int) ([]model.ChildcareLog, error)
	// Save 按 (classId, date) upsert；created 标识本次为新建还是覆盖
	Save(ctx context.Context, req *dto.SaveChildcareLogRequest) (log *model.ChildcareLog, created bool, err error)
	Weekly(ctx context.Context, startDate, endDate string, classID *int) ([]model.ChildcareLog, error)
	GetEvaluationContent(ctx context.Context, date string, classID *int) (*dto.EvaluationContentResponse, error)
	SaveEvaluationContent(ctx context.Context, date string, req *dto.SaveEvaluationContentRequest) (log *model.ChildcareLog, created bool, err error)
}

type childcareLogService struct {
	repo   *repository.Repository
	kv     kvstore.Store
	logger *zap.Logger
}

// NewChildcareLogService 创建 ChildcareLogService 实例
func NewChildcareLogService(repo *repository.Repository, kv kvstore.Store, logger *zap.Logger) ChildcareLogService {
	return &childcareLogService{repo: repo, kv: kv, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *childcareLogService) List(ctx context.Context, filter repository.ChildcareLogFilter) ([]model.ChildcareLog, error) {
	if filter.StartDate != "" && !dateutil.ValidDate(filter.StartDate) {
		return nil, apperr.BadRequest("INVALID_START_DATE", "Invalid startDate format. Use YYYY-MM-DD")
	}
	if filter.EndDate != "" && !dateutil.ValidDate(filter.EndDate) {
		return nil, apperr.BadRequest("INVALID_END_DATE", "Invalid endDate format. Use YYYY-MM-DD")
	}

	logs, err := s.repo.ChildcareLog.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出保育日志失败", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// ────────────────────── GetByDate ──────────────────────

func (s *childcareLogService) GetByDate(ctx context.Context, date string, classID *int) ([]model.ChildcareLog, error) {
	if !dateutil.ValidDate(date) {
		return nil, apperr.BadRequest("INVALID_DATE_FORMAT", "Invalid date format. Use YYYY-MM-DD format")
	}

	logs, err := s.repo.ChildcareLog.ListByDate(ctx, date, classID)
	if err != nil {
		s.logger.Error("按日期查询保育日志失败", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// ────────────────────── Save ──────────────────────

func (s *childcareLogService) Save(ctx context.Context, req *dto.SaveChildcareLogRequest) (*model.ChildcareLog, bool, error) {
	if req.ClassID == nil || *req.ClassID == 0 {
		return nil, false, apperr.BadRequest("MISSING_CLASS_ID", "classId is required")
	}
	if req.Date == nil || *req.Date == "" {
		return nil, false, apperr.BadRequest("MISSING_DATE", "date is required")
	}
	if !dateutil.ValidDate(*req.Date) {
		return nil, false, apperr.BadRequest("INVALID_DATE_FORMAT", "date must be in YYYY-MM-DD format")
	}

	// 逐条校验日程行
	for i, item := range req.Schedule {
		if item.Label == "" {
			return nil, false, apperr.BadRequestf("MISSING_ACTIVITY_TIME",
				"Activity at index %d must have a valid time field", i)
		}
		if item.Activity == "" {
			return nil, false, apperr.BadRequestf("MISSING_ACTIVITY_NAME",
				"Activity at index %d must have a valid activity field", i)
		}
		if !schedule.ValidExecution(item.Execution) {
			return nil, false, apperr.BadRequestf("INVALID_EXECUTION",
				"Activity at index %d has an invalid execution value", i)
		}
	}

	classID := *req.ClassID
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.NotFound("CLASS_NOT_FOUND", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("classId", classID), zap.Error(err))
		return nil, false, err
	}

	date := strings.TrimSpace(*req.Date)
	existed := true
	if _, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, classID, date); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询保育日志失败", zap.Error(err))
			return nil, false, err
		}
		existed = false
	}

	log := &model.ChildcareLog{
		ClassID:     classID,
		Date:        date,
		Keywords:    strings.TrimSpace(req.Keywords),
		Evaluation:  strings.TrimSpace(req.Evaluation),
		SupportPlan: strings.TrimSpace(req.SupportPlan),
		Schedule:    model.ScheduleItems(req.Schedule),
	}
	if err := s.repo.ChildcareLog.Upsert(ctx, log); err != nil {
		s.logger.Error("保存保育日志失败", zap.Int("classId", classID), zap.String("date", date), zap.Error(err))
		return nil, false, err
	}

	saved, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, classID, date)
	if err != nil {
		s.logger.Error("回读保育日志失败", zap.Error(err))
		return nil, false, err
	}

	// 保存成功后快照固定行到班级模板；失败仅记录，不影响主流程
	s.snapshotFixedTemplate(ctx, classID, schedule.Schedule(req.Schedule))

	return saved, !existed, nil
}

// ────────────────────── Weekly ──────────────────────

func (s *childcareLogService) Weekly(ctx context.Context, startDate, endDate string, classID *int) ([]model.ChildcareLog, error) {
	if startDate == "" {
		return nil, apperr.BadRequest("MISSING_START_DATE", "startDate parameter is required")
	}
	if endDate == "" {
		return nil, apperr.BadRequest("MISSING_END_DATE", "endDate parameter is required")
	}
	if !dateutil.ValidDate(startDate) {
		return nil, apperr.BadRequest("INVALID_START_DATE_FORMAT", "startDate must be in YYYY-MM-DD format")
	}
	if !dateutil.ValidDate(endDate) {
		return nil, apperr.BadRequest("INVALID_END_DATE_FORMAT", "endDate must be in YYYY-MM-DD format")
	}
	if startDate > endDate {
		return nil, apperr.BadRequest("INVALID_DATE_RANGE", "startDate must be less than or equal to endDate")
	}

	logs, err := s.repo.ChildcareLog.ListByRange(ctx, startDate, endDate, classID)
	if err != nil {
		s.logger.Error("按区间查询保育日志失败", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// ────────────────────── GetEvaluationContent ──────────────────────

func (s *childcareLogService) GetEvaluationContent(ctx context.Context, date string, classID *int) (*dto.EvaluationContentResponse, error) {
	if !dateutil.ValidDate(date) {
		return nil, apperr.BadRequest("INVALID_DATE_FORMAT", "Invalid date format. Use YYYY-MM-DD")
	}

	resolved, err := s.resolveClassID(ctx, classID)
	if err != nil {
		return nil, err
	}

	log, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, resolved, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("LOG_NOT_FOUND", "Childcare log not found")
		}
		s.logger.Error("查询保育日志失败", zap.Error(err))
		return nil, err
	}
	return &dto.EvaluationContentResponse{EvaluationContent: log.EvaluationContent}, nil
}

// ────────────────────── SaveEvaluationContent ──────────────────────

func (s *childcareLogService) SaveEvaluationContent(ctx context.Context, date string, req *dto.SaveEvaluationContentRequest) (*model.ChildcareLog, bool, error) {
	if !dateutil.ValidDate(date) {
		return nil, false, apperr.BadRequest("INVALID_DATE_FORMAT", "Invalid date format. Use YYYY-MM-DD")
	}
	content := strings.TrimSpace(req.EvaluationContent)
	if content == "" {
		return nil, false, apperr.BadRequest("MISSING_EVALUATION_CONTENT", "evaluationContent is required and must be a non-empty string")
	}

	classID, err := s.resolveClassID(ctx, req.ClassID)
	if err != nil {
		return nil, false, err
	}

	if _, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, classID, date); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询保育日志失败", zap.Error(err))
			return nil, false, err
		}
		// 当日日志不存在：新建占位记录承载评价全文
		log := &model.ChildcareLog{
			ClassID:           classID,
			Date:              date,
			Keywords:          "Generated evaluation",
			Evaluation:        "Auto-generated evaluation content",
			SupportPlan:       "Generated support plan",
			EvaluationContent: &content,
		}
		if err := s.repo.ChildcareLog.Upsert(ctx, log); err != nil {
			s.logger.Error("创建保育日志失败", zap.Error(err))
			return nil, false, err
		}
		saved, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, classID, date)
		if err != nil {
			return nil, false, err
		}
		return saved, true, nil
	}

	if err := s.repo.ChildcareLog.UpdateEvaluationContent(ctx, classID, date, content); err != nil {
		s.logger.Error("更新评价全文失败", zap.Error(err))
		return nil, false, err
	}
	saved, err := s.repo.ChildcareLog.GetByClassAndDate(ctx, classID, date)
	if err != nil {
		return nil, false, err
	}
	return saved, false, nil
}

// ── 内部辅助方法 ──

// resolveClassID 未显式指定班级时取系统内第一个班级
func (s *childcareLogService) resolveClassID(ctx context.Context, classID *int) (int, error) {
	if classID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *classID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperr.BadRequest("CLASS_NOT_FOUND", "Class not found")
			}
			s.logger.Error("查询班级失败", zap.Int("classId", *classID), zap.Error(err))
			return 0, err
		}
		return *classID, nil
	}

	first, err := s.repo.Class.First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.BadRequest("NO_CLASSES_FOUND", "No classes available")
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return 0, err
	}
	return first.ID, nil
}

// snapshotFixedTemplate 把当前日程中的固定行快照进班级模板
func (s *childcareLogService) snapshotFixedTemplate(ctx context.Context, classID int, sched schedule.Schedule) {
	fixed := sched.FixedItems()
	if len(fixed) == 0 {
		return
	}
	data, err := json.Marshal(fixed)
	if err != nil {
		s.logger.Warn("固定日程模板序列化失败", zap.Int("classId", classID), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, scheduleTemplateKey(classID), string(data)); err != nil {
		s.logger.Warn("固定日程模板保存失败", zap.Int("classId", classID), zap.Error(err))
	}
}
