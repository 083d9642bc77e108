package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// ActivityPlanHandler 활동계획模块 HTTP 处理器
type ActivityPlanHandler struct {
	planSvc service.ActivityPlanService
}

// NewActivityPlanHandler 创建 ActivityPlanHandler
func NewActivityPlanHandler(planSvc service.ActivityPlanService) *ActivityPlanHandler {
	return &ActivityPlanHandler{planSvc: planSvc}
}

// ListActivityPlans 获取活动计划列表，支持分页与排序
// GET /api/activity-plans?classId=&sort=&order=&limit=&offset=
func (h *ActivityPlanHandler) ListActivityPlans(c *gin.Context) {
	classID, ok := QueryInt(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	filter := repository.ActivityPlanFilter{
		ClassID: classID,
		Sort:    c.Query("sort"),
		Order:   c.Query("order"),
		Limit:   QueryIntDefault(c, "limit", 0),
		Offset:  QueryIntDefault(c, "offset", 0),
	}

	plans, err := h.planSvc.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	if plans == nil {
		plans = []model.ActivityPlan{}
	}
	response.OK(c, plans)
}

// CreateActivityPlan 创建活动计划
// POST /api/activity-plans
func (h *ActivityPlanHandler) CreateActivityPlan(c *gin.Context) {
	var req dto.CreateActivityPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	plan, err := h.planSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, plan)
}

// UpdateActivityPlan 更新活动计划
// PUT /api/activity-plans/:id
func (h *ActivityPlanHandler) UpdateActivityPlan(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	var req dto.UpdateActivityPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	plan, err := h.planSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

// DeleteActivityPlan 删除活动计划
// DELETE /api/activity-plans/:id
func (h *ActivityPlanHandler) DeleteActivityPlan(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	plan, err := h.planSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}
