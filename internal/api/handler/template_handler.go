package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// TemplateHandler 固定日程模板与리포트 바구니 HTTP 处理器
type TemplateHandler struct {
	tmplSvc service.TemplateService
}

// NewTemplateHandler 创建 TemplateHandler
func NewTemplateHandler(tmplSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{tmplSvc: tmplSvc}
}

// GetScheduleTemplate 获取班级固定日程模板
// GET /api/schedule-templates/:classId
func (h *TemplateHandler) GetScheduleTemplate(c *gin.Context) {
	classID, ok := MustParamID(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	resp, err := h.tmplSvc.GetScheduleTemplate(c.Request.Context(), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// SaveScheduleTemplate 覆盖保存班级固定日程模板
// PUT /api/schedule-templates/:classId
func (h *TemplateHandler) SaveScheduleTemplate(c *gin.Context) {
	classID, ok := MustParamID(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	var req dto.SaveScheduleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	if err := h.tmplSvc.SaveScheduleTemplate(c.Request.Context(), classID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// GetReportBasket 获取固定（핀）观察记录 id 集合
// GET /api/report-basket
func (h *TemplateHandler) GetReportBasket(c *gin.Context) {
	resp, err := h.tmplSvc.GetReportBasket(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// SaveReportBasket 覆盖保存리포트 바구니
// PUT /api/report-basket
func (h *TemplateHandler) SaveReportBasket(c *gin.Context) {
	var req dto.SaveReportBasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	if err := h.tmplSvc.SaveReportBasket(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}
