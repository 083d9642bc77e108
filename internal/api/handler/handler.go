package handler

import "github.com/hungryangel/early-childhood-auto-doc/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Class                 *ClassHandler
	Child                 *ChildHandler
	ObservationLog        *ObservationLogHandler
	DevelopmentEvaluation *DevelopmentEvaluationHandler
	ActivityPlan          *ActivityPlanHandler
	ChildcareLog          *ChildcareLogHandler
	DailyObservation      *DailyObservationHandler
	Observation           *ObservationHandler
	Generate              *GenerateHandler
	Template              *TemplateHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Class:                 NewClassHandler(svc.Class),
		Child:                 NewChildHandler(svc.Child),
		ObservationLog:        NewObservationLogHandler(svc.ObservationLog),
		DevelopmentEvaluation: NewDevelopmentEvaluationHandler(svc.DevelopmentEvaluation),
		ActivityPlan:          NewActivityPlanHandler(svc.ActivityPlan),
		ChildcareLog:          NewChildcareLogHandler(svc.ChildcareLog, svc.Export),
		DailyObservation:      NewDailyObservationHandler(svc.DailyObservation),
		Observation:           NewObservationHandler(svc.Observation),
		Generate:              NewGenerateHandler(svc.Generation),
		Template:              NewTemplateHandler(svc.Template),
	}
}
