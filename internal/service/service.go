package service

import (
	"go.uber.org/zap"

	"github.com/hungryangel/early-childhood-auto-doc/config"
	"github.com/hungryangel/early-childhood-auto-doc/internal/ai"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/kvstore"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Class                 ClassService
	Child                 ChildService
	ObservationLog        ObservationLogService
	DevelopmentEvaluation DevelopmentEvaluationService
	ActivityPlan          ActivityPlanService
	ChildcareLog          ChildcareLogService
	DailyObservation      DailyObservationService
	Observation           ObservationService
	Generation            GenerationService
	Export                ExportService
	Template              TemplateService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	kv kvstore.Store,
	gen ai.TextGenerator,
	logger *zap.Logger,
) *Service {
	childcareLog := NewChildcareLogService(repo, kv, logger)

	return &Service{
		Class:                 NewClassService(repo, logger),
		Child:                 NewChildService(repo, logger),
		ObservationLog:        NewObservationLogService(repo, logger),
		DevelopmentEvaluation: NewDevelopmentEvaluationService(repo, logger),
		ActivityPlan:          NewActivityPlanService(repo, logger),
		ChildcareLog:          childcareLog,
		DailyObservation:      NewDailyObservationService(repo, logger),
		Observation:           NewObservationService(repo, logger),
		Generation:            NewGenerationService(repo, gen, cfg.AI.Timeout, logger),
		Export:                NewExportService(childcareLog, logger),
		Template:              NewTemplateService(repo, kv, logger),
	}
}
