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

// ObservationService 관찰기록业务接口
type ObservationService interface {
	List(ctx context.Context, query dto.ObservationListQuery) (*dto.ObservationListResponse, error)
	Create(ctx context.Context, req *dto.CreateObservationRequest) (*model.Observation, error)
	Update(ctx context.Context, id int, req *dto.UpdateObservationRequest) (*model.Observation, error)
	Delete(ctx context.Context, id int) (*model.Observation, error)
}

type observationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewObservationService 创建 ObservationService 实例
func NewObservationService(repo *repository.Repository, logger *zap.Logger) ObservationService {
	return &observationService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *observationService) List(ctx context.Context, query dto.ObservationListQuery) (*dto.ObservationListResponse, error) {
	if query.Month != "" && !dateutil.ValidMonth(query.Month) {
		return nil, apperr.BadRequest("INVALID_MONTH_FORMAT", "Month must be in YYYY-MM format")
	}
	if query.Domain != "" && query.Domain != "all" && !model.ValidDomain(query.Domain) {
		return nil, apperr.BadRequest("INVALID_DOMAIN",
			"Invalid domain. Must be one of: "+strings.Join(model.ValidDomains, ", "))
	}
	if query.Domain == "all" {
		query.Domain = ""
	}

	if _, err := s.repo.Child.GetByID(ctx, query.ChildID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CHILD_NOT_FOUND", "Child not found")
		}
		s.logger.Error("查询儿童失败", zap.Int("childId", query.ChildID), zap.Error(err))
		return nil, err
	}

	filter := query.ToFilter()
	entries, total, err := s.repo.Observation.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出观察记录失败", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Observation.DailyCounts(ctx, filter)
	if err != nil {
		s.logger.Error("统计观察记录失败", zap.Error(err))
		return nil, err
	}
	dailyCounts := make(map[string]int, len(counts))
	for _, c := range counts {
		dailyCounts[c.Date] = c.Count
	}

	if entries == nil {
		entries = []model.Observation{}
	}
	return &dto.ObservationListResponse{
		DailyCounts: dailyCounts,
		TotalCount:  total,
		Entries:     entries,
	}, nil
}

// ────────────────────── Create ──────────────────────

func (s *observationService) Create(ctx context.Context, req *dto.CreateObservationRequest) (*model.Observation, error) {
	if req.ChildID == nil || *req.ChildID <= 0 {
		return nil, apperr.BadRequest("MISSING_CHILD_ID", "Valid childId is required")
	}
	if req.Date == nil || *req.Date == "" {
		return nil, apperr.BadRequest("MISSING_DATE", "Date is required")
	}
	if !dateutil.ValidDate(*req.Date) {
		return nil, apperr.BadRequest("INVALID_DATE_FORMAT", "Date must be in YYYY-MM-DD format")
	}
	if req.Time != "" && !dateutil.ValidTime(req.Time) {
		return nil, apperr.BadRequest("INVALID_TIME_FORMAT", "Time must be in HH:MM format")
	}
	if req.Domain == nil || *req.Domain == "" {
		return nil, apperr.BadRequest("MISSING_DOMAIN", "Domain is required")
	}
	if !model.ValidDomain(*req.Domain) {
		return nil, apperr.BadRequest("INVALID_DOMAIN",
			"Invalid domain. Must be one of: "+strings.Join(model.ValidDomains, ", "))
	}
	if req.Summary == nil || strings.TrimSpace(*req.Summary) == "" {
		return nil, apperr.BadRequest("MISSING_SUMMARY", "Summary is required")
	}
	if req.Author == nil || strings.TrimSpace(*req.Author) == "" {
		return nil, apperr.BadRequest("MISSING_AUTHOR", "Author is required")
	}

	if _, err := s.repo.Child.GetByID(ctx, *req.ChildID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CHILD_NOT_FOUND", "Child not found")
		}
		s.logger.Error("查询儿童失败", zap.Int("childId", *req.ChildID), zap.Error(err))
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	media := req.Media
	if media == nil {
		media = []model.ObservationMedia{}
	}
	followUps := req.FollowUps
	if followUps == nil {
		followUps = []string{}
	}

	obs := &model.Observation{
		ChildID:        *req.ChildID,
		Date:           *req.Date,
		Time:           req.Time,
		Domain:         *req.Domain,
		Tags:           model.StringList(tags),
		Summary:        strings.TrimSpace(*req.Summary),
		Detail:         strings.TrimSpace(req.Detail),
		Media:          model.MediaList(media),
		Author:         strings.TrimSpace(*req.Author),
		FollowUps:      model.StringList(followUps),
		LinkedToReport: req.LinkedToReport,
	}
	if err := s.repo.Observation.Create(ctx, obs); err != nil {
		s.logger.Error("创建观察记录失败", zap.Error(err))
		return nil, err
	}
	return obs, nil
}

// ────────────────────── Update ──────────────────────

func (s *observationService) Update(ctx context.Context, id int, req *dto.UpdateObservationRequest) (*model.Observation, error) {
	obs, err := s.repo.Observation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Observation not found")
		}
		s.logger.Error("查询观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if req.ChildID != nil {
		if *req.ChildID <= 0 {
			return nil, apperr.BadRequest("INVALID_CHILD_ID", "Valid childId is required")
		}
		if _, err := s.repo.Child.GetByID(ctx, *req.ChildID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("CHILD_NOT_FOUND", "Child not found")
			}
			s.logger.Error("查询儿童失败", zap.Int("childId", *req.ChildID), zap.Error(err))
			return nil, err
		}
		obs.ChildID = *req.ChildID
	}
	if req.Date != nil {
		if !dateutil.ValidDate(*req.Date) {
			return nil, apperr.BadRequest("INVALID_DATE_FORMAT", "Date must be in YYYY-MM-DD format")
		}
		obs.Date = *req.Date
	}
	if req.Time != nil {
		if *req.Time != "" && !dateutil.ValidTime(*req.Time) {
			return nil, apperr.BadRequest("INVALID_TIME_FORMAT", "Time must be in HH:MM format")
		}
		obs.Time = *req.Time
	}
	if req.Domain != nil {
		if !model.ValidDomain(*req.Domain) {
			return nil, apperr.BadRequest("INVALID_DOMAIN",
				"Invalid domain. Must be one of: "+strings.Join(model.ValidDomains, ", "))
		}
		obs.Domain = *req.Domain
	}
	if req.Tags != nil {
		obs.Tags = model.StringList(*req.Tags)
	}
	if req.Summary != nil {
		summary := strings.TrimSpace(*req.Summary)
		if summary == "" {
			return nil, apperr.BadRequest("EMPTY_SUMMARY", "Summary cannot be empty")
		}
		obs.Summary = summary
	}
	if req.Detail != nil {
		obs.Detail = strings.TrimSpace(*req.Detail)
	}
	if req.Media != nil {
		obs.Media = model.MediaList(*req.Media)
	}
	if req.Author != nil {
		author := strings.TrimSpace(*req.Author)
		if author == "" {
			return nil, apperr.BadRequest("EMPTY_AUTHOR", "Author cannot be empty")
		}
		obs.Author = author
	}
	if req.FollowUps != nil {
		obs.FollowUps = model.StringList(*req.FollowUps)
	}
	if req.LinkedToReport != nil {
		obs.LinkedToReport = *req.LinkedToReport
	}

	if err := s.repo.Observation.Update(ctx, obs); err != nil {
		s.logger.Error("更新观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return obs, nil
}

// ────────────────────── Delete ──────────────────────

func (s *observationService) Delete(ctx context.Context, id int) (*model.Observation, error) {
	obs, err := s.repo.Observation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("", "Observation not found")
		}
		s.logger.Error("查询观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Observation.Delete(ctx, id); err != nil {
		s.logger.Error("删除观察记录失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return obs, nil
}
