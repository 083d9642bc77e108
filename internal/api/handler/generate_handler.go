package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// GenerateHandler AI 생성模块 HTTP 处理器
type GenerateHandler struct {
	genSvc service.GenerationService
}

// NewGenerateHandler 创建 GenerateHandler
func NewGenerateHandler(genSvc service.GenerationService) *GenerateHandler {
	return &GenerateHandler{genSvc: genSvc}
}

// GenerateActivityPlan 生成월간 활동계획并持久化
// POST /api/generate-activity-plan
func (h *GenerateHandler) GenerateActivityPlan(c *gin.Context) {
	var req dto.GenerateActivityPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	resp, err := h.genSvc.GenerateActivityPlan(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// GenerateEvaluation 生成당일 평가 및 지원계획
// POST /api/generate-evaluation
func (h *GenerateHandler) GenerateEvaluation(c *gin.Context) {
	var req dto.GenerateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	resp, err := h.genSvc.GenerateEvaluation(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// GenerateChildObservation 生成개별 아동관찰 내용
// POST /api/generate-child-observation
func (h *GenerateHandler) GenerateChildObservation(c *gin.Context) {
	var req dto.GenerateChildObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	resp, err := h.genSvc.GenerateChildObservation(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}
