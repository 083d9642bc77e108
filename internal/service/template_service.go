package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/internal/schedule"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/kvstore"
)

// reportBasketKey 报告篮的 KV 键
const reportBasketKey = "reportBasket"

// TemplateService 班级固定日程模板与报告篮业务接口
// 两者均为 KV 存储承载的轻量状态
type TemplateService interface {
	GetScheduleTemplate(ctx context.Context, classID int) (*dto.ScheduleTemplateResponse, error)
	SaveScheduleTemplate(ctx context.Context, classID int, req *dto.SaveScheduleTemplateRequest) error
	GetReportBasket(ctx context.Context) (*dto.ReportBasketResponse, error)
	SaveReportBasket(ctx context.Context, req *dto.SaveReportBasketRequest) error
}

type templateService struct {
	repo   *repository.Repository
	kv     kvstore.Store
	logger *zap.Logger
}

// NewTemplateService 创建 TemplateService 实例
func NewTemplateService(repo *repository.Repository, kv kvstore.Store, logger *zap.Logger) TemplateService {
	return &templateService{repo: repo, kv: kv, logger: logger}
}

// ────────────────────── GetScheduleTemplate ──────────────────────

func (s *templateService) GetScheduleTemplate(ctx context.Context, classID int) (*dto.ScheduleTemplateResponse, error) {
	if err := s.checkClass(ctx, classID); err != nil {
		return nil, err
	}

	value, ok, err := s.kv.Get(ctx, scheduleTemplateKey(classID))
	if err != nil {
		s.logger.Error("读取固定日程模板失败", zap.Int("classId", classID), zap.Error(err))
		return nil, err
	}

	items := []schedule.FixedItem{}
	if ok {
		if err := json.Unmarshal([]byte(value), &items); err != nil {
			s.logger.Warn("固定日程模板解析失败，按空模板处理", zap.Int("classId", classID), zap.Error(err))
			items = []schedule.FixedItem{}
		}
	}
	return &dto.ScheduleTemplateResponse{ClassID: classID, Items: items}, nil
}

// ────────────────────── SaveScheduleTemplate ──────────────────────

func (s *templateService) SaveScheduleTemplate(ctx context.Context, classID int, req *dto.SaveScheduleTemplateRequest) error {
	if err := s.checkClass(ctx, classID); err != nil {
		return err
	}
	if req.Items == nil {
		return apperr.BadRequest("INVALID_TEMPLATE", "items must be an array")
	}

	data, err := json.Marshal(req.Items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, scheduleTemplateKey(classID), string(data)); err != nil {
		s.logger.Error("保存固定日程模板失败", zap.Int("classId", classID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── GetReportBasket ──────────────────────

func (s *templateService) GetReportBasket(ctx context.Context) (*dto.ReportBasketResponse, error) {
	value, ok, err := s.kv.Get(ctx, reportBasketKey)
	if err != nil {
		s.logger.Error("读取报告篮失败", zap.Error(err))
		return nil, err
	}

	ids := []int{}
	if ok {
		if err := json.Unmarshal([]byte(value), &ids); err != nil {
			s.logger.Warn("报告篮解析失败，按空处理", zap.Error(err))
			ids = []int{}
		}
	}
	return &dto.ReportBasketResponse{ObservationIDs: ids}, nil
}

// ────────────────────── SaveReportBasket ──────────────────────

func (s *templateService) SaveReportBasket(ctx context.Context, req *dto.SaveReportBasketRequest) error {
	if req.ObservationIDs == nil {
		return apperr.BadRequest("INVALID_BASKET", "observationIds must be an array")
	}

	data, err := json.Marshal(req.ObservationIDs)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, reportBasketKey, string(data)); err != nil {
		s.logger.Error("保存报告篮失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *templateService) checkClass(ctx context.Context, classID int) error {
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("CLASS_NOT_FOUND", "Class not found")
		}
		s.logger.Error("查询班级失败", zap.Int("classId", classID), zap.Error(err))
		return err
	}
	return nil
}
