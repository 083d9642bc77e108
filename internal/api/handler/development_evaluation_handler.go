package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// DevelopmentEvaluationHandler 발달평가模块 HTTP 处理器
type DevelopmentEvaluationHandler struct {
	evalSvc service.DevelopmentEvaluationService
}

// NewDevelopmentEvaluationHandler 创建 DevelopmentEvaluationHandler
func NewDevelopmentEvaluationHandler(evalSvc service.DevelopmentEvaluationService) *DevelopmentEvaluationHandler {
	return &DevelopmentEvaluationHandler{evalSvc: evalSvc}
}

// ListDevelopmentEvaluations 按儿童（可选 period）获取发育评价
// GET /api/development-evaluations?childId=&period=
func (h *DevelopmentEvaluationHandler) ListDevelopmentEvaluations(c *gin.Context) {
	childID, ok := QueryInt(c, "childId", "MISSING_CHILD_ID", "Valid childId query parameter is required")
	if !ok {
		return
	}
	if childID == nil || *childID <= 0 {
		response.BadRequest(c, "MISSING_CHILD_ID", "Valid childId query parameter is required")
		return
	}

	evals, err := h.evalSvc.List(c.Request.Context(), *childID, c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if evals == nil {
		evals = []model.DevelopmentEvaluation{}
	}
	response.OK(c, evals)
}

// CreateDevelopmentEvaluation 创建发育评价（自动聚合观察记录、计算월령）
// POST /api/development-evaluations
func (h *DevelopmentEvaluationHandler) CreateDevelopmentEvaluation(c *gin.Context) {
	var req dto.CreateDevelopmentEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	eval, err := h.evalSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, eval)
}

// UpdateDevelopmentEvaluation 更新发育评价
// PUT /api/development-evaluations/:id
func (h *DevelopmentEvaluationHandler) UpdateDevelopmentEvaluation(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	var req dto.UpdateDevelopmentEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	eval, err := h.evalSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, eval)
}

// DeleteDevelopmentEvaluation 删除发育评价
// DELETE /api/development-evaluations/:id
func (h *DevelopmentEvaluationHandler) DeleteDevelopmentEvaluation(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	eval, err := h.evalSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, eval)
}
