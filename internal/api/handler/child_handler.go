package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// ChildHandler 儿童（아동）模块 HTTP 处理器
type ChildHandler struct {
	childSvc service.ChildService
}

// NewChildHandler 创建 ChildHandler
func NewChildHandler(childSvc service.ChildService) *ChildHandler {
	return &ChildHandler{childSvc: childSvc}
}

// ListChildren 获取儿童列表（含班级信息）
// GET /api/children
func (h *ChildHandler) ListChildren(c *gin.Context) {
	children, err := h.childSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if children == nil {
		children = []model.ChildWithClass{}
	}
	response.OK(c, children)
}

// CreateChild 登记儿童
// POST /api/children
func (h *ChildHandler) CreateChild(c *gin.Context) {
	var req dto.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_FIELD_TYPE", "Request body must be valid JSON")
		return
	}

	child, err := h.childSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, child)
}

// DeleteChild 删除儿童及其全部关联记录
// DELETE /api/children/:id
func (h *ChildHandler) DeleteChild(c *gin.Context) {
	id, ok := MustParamID(c, "id", "INVALID_CHILD_ID", "Child ID must be a valid number")
	if !ok {
		return
	}

	result, err := h.childSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
