package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// ObservationHandler 관찰기록模块 HTTP 处理器
type ObservationHandler struct {
	obsSvc service.ObservationService
}

// NewObservationHandler 创建 ObservationHandler
func NewObservationHandler(obsSvc service.ObservationService) *ObservationHandler {
	return &ObservationHandler{obsSvc: obsSvc}
}

// ListObservations 按儿童获取观察记录，支持月份/영역/태그/검색어过滤与分页
// GET /api/observations?childId=&month=&domain=&tags=&search=&limit=&offset=
func (h *ObservationHandler) ListObservations(c *gin.Context) {
	childID, ok := QueryInt(c, "childId", "MISSING_CHILD_ID", "Valid childId query parameter is required")
	if !ok {
		return
	}
	if childID == nil || *childID <= 0 {
		response.BadRequest(c, "MISSING_CHILD_ID", "Valid childId query parameter is required")
		return
	}

	query := dto.ObservationListQuery{
		ChildID: *childID,
		Month:   c.Query("month"),
		Domain:  c.Query("domain"),
		Tags:    splitTags(c.Query("tags")),
		Search:  c.Query("search"),
		Limit:   QueryIntDefault(c, "limit", 0),
		Offset:  QueryIntDefault(c, "offset", 0),
	}

	resp, err := h.obsSvc.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// CreateObservation 创建观察记录
// POST /api/observations
func (h *ObservationHandler) CreateObservation(c *gin.Context) {
	var req dto.CreateObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	obs, err := h.obsSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, obs)
}

// UpdateObservation 更新观察记录
// PUT /api/observations/:id
func (h *ObservationHandler) UpdateObservation(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	var req dto.UpdateObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	obs, err := h.obsSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, obs)
}

// DeleteObservation 删除观察记录
// DELETE /api/observations/:id
func (h *ObservationHandler) DeleteObservation(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_ID", "ID must be a valid number")
	if !ok {
		return
	}

	obs, err := h.obsSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, obs)
}

// splitTags 解析逗号分隔的标签参数，去除空项
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
