package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// ObservationLogHandler 월별관찰기록模块 HTTP 处理器
type ObservationLogHandler struct {
	logSvc service.ObservationLogService
}

// NewObservationLogHandler 创建 ObservationLogHandler
func NewObservationLogHandler(logSvc service.ObservationLogService) *ObservationLogHandler {
	return &ObservationLogHandler{logSvc: logSvc}
}

// ListObservationLogs 按儿童（可选月份区间）获取观察记录
// GET /api/observation-logs?childId=&startMonth=&endMonth=
func (h *ObservationLogHandler) ListObservationLogs(c *gin.Context) {
	childID, ok := QueryInt(c, "childId", "MISSING_CHILD_ID", "Valid childId query parameter is required")
	if !ok {
		return
	}
	if childID == nil || *childID <= 0 {
		response.BadRequest(c, "MISSING_CHILD_ID", "Valid childId query parameter is required")
		return
	}

	logs, err := h.logSvc.List(c.Request.Context(), *childID, c.Query("startMonth"), c.Query("endMonth"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if logs == nil {
		logs = []model.ObservationLog{}
	}
	response.OK(c, logs)
}

// CreateObservationLog 创建观察记录
// POST /api/observation-logs
func (h *ObservationLogHandler) CreateObservationLog(c *gin.Context) {
	var req dto.CreateObservationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	log, err := h.logSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, log)
}

// UpdateObservationLog 更新观察记录
// PUT /api/observation-logs/:id
func (h *ObservationLogHandler) UpdateObservationLog(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	var req dto.UpdateObservationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	log, err := h.logSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, log)
}

// DeleteObservationLog 删除观察记录
// DELETE /api/observation-logs/:id
func (h *ObservationLogHandler) DeleteObservationLog(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	log, err := h.logSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, log)
}
