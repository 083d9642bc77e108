package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// DailyObservationHandler 일일 아동관찰模块 HTTP 处理器
type DailyObservationHandler struct {
	obsSvc service.DailyObservationService
}

// NewDailyObservationHandler 创建 DailyObservationHandler
func NewDailyObservationHandler(obsSvc service.DailyObservationService) *DailyObservationHandler {
	return &DailyObservationHandler{obsSvc: obsSvc}
}

// ListDailyObservations 获取某班级某日的儿童观察
// GET /api/daily-observations?date=&classId=
func (h *DailyObservationHandler) ListDailyObservations(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "MISSING_DATE", "date query parameter is required")
		return
	}
	classID, ok := QueryInt(c, "classId", "MISSING_CLASS_ID", "Valid classId query parameter is required")
	if !ok {
		return
	}
	if classID == nil || *classID <= 0 {
		response.BadRequest(c, "MISSING_CLASS_ID", "Valid classId query parameter is required")
		return
	}

	entries, err := h.obsSvc.List(c.Request.Context(), date, *classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []model.DailyChildObservation{}
	}
	response.OK(c, entries)
}

// CreateDailyObservation 录入当日儿童观察
// POST /api/daily-observations
func (h *DailyObservationHandler) CreateDailyObservation(c *gin.Context) {
	var req dto.CreateDailyObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	entry, err := h.obsSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateDailyObservation 更新观察正文
// PUT /api/daily-observations/:id
func (h *DailyObservationHandler) UpdateDailyObservation(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	var req dto.UpdateDailyObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	if err := h.obsSvc.Update(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// DeleteDailyObservation 删除当日观察
// DELETE /api/daily-observations/:id
func (h *DailyObservationHandler) DeleteDailyObservation(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	if err := h.obsSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}
