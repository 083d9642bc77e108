package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// ClassHandler 班级（우리반）模块 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// ListClasses 获取班级列表；携带 id 查询参数时返回单个班级
// GET /api/classes?id=
func (h *ClassHandler) ListClasses(c *gin.Context) {
	id, ok := QueryInt(c, "id", "INVALID_ID", "Valid ID is required")
	if !ok {
		return
	}
	if id != nil {
		class, err := h.classSvc.GetByID(c.Request.Context(), *id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, class)
		return
	}

	classes, err := h.classSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if classes == nil {
		classes = []model.Class{}
	}
	response.OK(c, classes)
}

// CreateClass 创建班级
// POST /api/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}

// UpdateClass 更新班级
// PUT /api/classes/:id
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	class, err := h.classSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// DeleteClass 删除班级
// DELETE /api/classes/:id
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_CLASS_ID", "Class ID must be a valid number")
	if !ok {
		return
	}

	class, err := h.classSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}
