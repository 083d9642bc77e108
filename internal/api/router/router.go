package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hungryangel/early-childhood-auto-doc/config"
	"github.com/hungryangel/early-childhood-auto-doc/internal/api/handler"
	"github.com/hungryangel/early-childhood-auto-doc/internal/api/middleware"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/kvstore"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 仅用于限流，内存部署传 nil 即可
func Setup(cfg *config.Config, h *handler.Handler, rdb *kvstore.Redis, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 班级模块
		classes := api.Group("/classes")
		{
			classes.GET("", h.Class.ListClasses)
			classes.POST("", h.Class.CreateClass)
			classes.PUT("/:id", h.Class.UpdateClass)
			classes.DELETE("/:id", h.Class.DeleteClass)
		}

		// 儿童模块
		children := api.Group("/children")
		{
			children.GET("", h.Child.ListChildren)
			children.POST("", h.Child.CreateChild)
			children.DELETE("/:id", h.Child.DeleteChild)
		}

		// 월별관찰기록模块
		observationLogs := api.Group("/observation-logs")
		{
			observationLogs.GET("", h.ObservationLog.ListObservationLogs)
			observationLogs.POST("", h.ObservationLog.CreateObservationLog)
			observationLogs.PUT("/:id", h.ObservationLog.UpdateObservationLog)
			observationLogs.DELETE("/:id", h.ObservationLog.DeleteObservationLog)
		}

		// 발달평가模块
		developmentEvaluations := api.Group("/development-evaluations")
		{
			developmentEvaluations.GET("", h.DevelopmentEvaluation.ListDevelopmentEvaluations)
			developmentEvaluations.POST("", h.DevelopmentEvaluation.CreateDevelopmentEvaluation)
			developmentEvaluations.PUT("/:id", h.DevelopmentEvaluation.UpdateDevelopmentEvaluation)
			developmentEvaluations.DELETE("/:id", h.DevelopmentEvaluation.DeleteDevelopmentEvaluation)
		}

		// 활동계획模块
		activityPlans := api.Group("/activity-plans")
		{
			activityPlans.GET("", h.ActivityPlan.ListActivityPlans)
			activityPlans.POST("", h.ActivityPlan.CreateActivityPlan)
			activityPlans.PUT("/:id", h.ActivityPlan.UpdateActivityPlan)
			activityPlans.DELETE("/:id", h.ActivityPlan.DeleteActivityPlan)
		}

		// 보육일지模块（weekly 静态路由须先于 :date 注册）
		childcareLogs := api.Group("/childcare-logs")
		{
			childcareLogs.GET("", h.ChildcareLog.ListChildcareLogs)
			childcareLogs.POST("", h.ChildcareLog.SaveChildcareLog)
			childcareLogs.GET("/weekly", h.ChildcareLog.GetWeeklyChildcareLogs)
			childcareLogs.GET("/weekly/export", h.ChildcareLog.ExportWeeklyChildcareLogs)
			childcareLogs.GET("/:date", h.ChildcareLog.GetChildcareLogsByDate)
			childcareLogs.GET("/:date/evaluation", h.ChildcareLog.GetEvaluationContent)
			childcareLogs.POST("/:date/evaluation", h.ChildcareLog.SaveEvaluationContent)
		}

		// 일일 아동관찰模块
		dailyObservations := api.Group("/daily-observations")
		{
			dailyObservations.GET("", h.DailyObservation.ListDailyObservations)
			dailyObservations.POST("", h.DailyObservation.CreateDailyObservation)
			dailyObservations.PUT("/:id", h.DailyObservation.UpdateDailyObservation)
			dailyObservations.DELETE("/:id", h.DailyObservation.DeleteDailyObservation)
		}

		// 관찰기록模块
		observations := api.Group("/observations")
		{
			observations.GET("", h.Observation.ListObservations)
			observations.POST("", h.Observation.CreateObservation)
			observations.PUT("/:id", h.Observation.UpdateObservation)
			observations.DELETE("/:id", h.Observation.DeleteObservation)
		}

		// AI 생성模块（限流：AI 调用成本高）
		aiLimit := middleware.RateLimit(rdb, 10, time.Minute)
		api.POST("/generate-activity-plan", aiLimit, h.Generate.GenerateActivityPlan)
		api.POST("/generate-evaluation", aiLimit, h.Generate.GenerateEvaluation)
		api.POST("/generate-child-observation", aiLimit, h.Generate.GenerateChildObservation)

		// 固定日程模板与리포트 바구니
		api.GET("/schedule-templates/:classId", h.Template.GetScheduleTemplate)
		api.PUT("/schedule-templates/:classId", h.Template.SaveScheduleTemplate)
		api.GET("/report-basket", h.Template.GetReportBasket)
		api.PUT("/report-basket", h.Template.SaveReportBasket)
	}

	return r
}
