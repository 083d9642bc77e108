package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ChildcareLogHandler 보육일지模块 HTTP 处理器
type ChildcareLogHandler struct {
	logSvc    service.ChildcareLogService
	exportSvc service.ExportService
}

// NewChildcareLogHandler 创建 ChildcareLogHandler
func NewChildcareLogHandler(logSvc service.ChildcareLogService, exportSvc service.ExportService) *ChildcareLogHandler {
	return &ChildcareLogHandler{logSvc: logSvc, exportSvc: exportSvc}
}

// ListChildcareLogs 获取保育日志列表
// GET /api/childcare-logs?classId=&startDate=&endDate=&limit=&offset=
func (h *ChildcareLogHandler) ListChildcareLogs(c *gin.Context) {
	classID, ok := QueryInt(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	filter := repository.ChildcareLogFilter{
		ClassID:   classID,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Limit:     QueryIntDefault(c, "limit", 0),
		Offset:    QueryIntDefault(c, "offset", 0),
	}

	logs, err := h.logSvc.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	if logs == nil {
		logs = []model.ChildcareLog{}
	}
	response.OK(c, logs)
}

// SaveChildcareLog 按 (classId, date) upsert 保育日志；新建 201、覆盖 200
// POST /api/childcare-logs
func (h *ChildcareLogHandler) SaveChildcareLog(c *gin.Context) {
	var req dto.SaveChildcareLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	log, created, err := h.logSvc.Save(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, log)
		return
	}
	response.OK(c, log)
}

// GetChildcareLogsByDate 获取某日的保育日志
// GET /api/childcare-logs/:date?classId=
func (h *ChildcareLogHandler) GetChildcareLogsByDate(c *gin.Context) {
	classID, ok := QueryInt(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	logs, err := h.logSvc.GetByDate(c.Request.Context(), c.Param("date"), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if logs == nil {
		logs = []model.ChildcareLog{}
	}
	response.OK(c, logs)
}

// GetWeeklyChildcareLogs 获取一周区间内的保育日志（按日期升序）
// GET /api/childcare-logs/weekly?startDate=&endDate=&classId=
func (h *ChildcareLogHandler) GetWeeklyChildcareLogs(c *gin.Context) {
	classID, ok := QueryInt(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	logs, err := h.logSvc.Weekly(c.Request.Context(), c.Query("startDate"), c.Query("endDate"), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if logs == nil {
		logs = []model.ChildcareLog{}
	}
	response.OK(c, logs)
}

// ExportWeeklyChildcareLogs 导出一周保育日志为 Excel 下载
// GET /api/childcare-logs/weekly/export?startDate=&endDate=&classId=
func (h *ChildcareLogHandler) ExportWeeklyChildcareLogs(c *gin.Context) {
	classID, ok := QueryInt(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportWeekly(c.Request.Context(), c.Query("startDate"), c.Query("endDate"), classID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 文件名含韩文，按 RFC 5987 编码
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetEvaluationContent 获取某日的 AI 평가 전문
// GET /api/childcare-logs/:date/evaluation?classId=
func (h *ChildcareLogHandler) GetEvaluationContent(c *gin.Context) {
	classID, ok := QueryInt(c, "classId", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	resp, err := h.logSvc.GetEvaluationContent(c.Request.Context(), c.Param("date"), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// SaveEvaluationContent 保存某日的 AI 평가 전문；日志不存在时自动建占位行
// POST /api/childcare-logs/:date/evaluation
func (h *ChildcareLogHandler) SaveEvaluationContent(c *gin.Context) {
	var req dto.SaveEvaluationContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	log, created, err := h.logSvc.SaveEvaluationContent(c.Request.Context(), c.Param("date"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, log)
		return
	}
	response.OK(c, log)
}
