package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
)

// ErrorBody 统一错误响应结构（与前端约定一致）
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ── 成功响应 ──

// OK 200 成功响应，直接输出数据本体
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ── 错误响应 ──

// Fail 通用错误响应
func Fail(c *gin.Context, httpStatus int, code, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message, Code: code})
}

// BadRequest 400
func BadRequest(c *gin.Context, code, message string) {
	Fail(c, http.StatusBadRequest, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code, message string) {
	Fail(c, http.StatusNotFound, code, message)
}

// InternalError 500 通用内部错误
// 不向客户端透出内部错误细节
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

// Error 按错误类型分发：业务错误按其状态码与代码输出，其余一律 500
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		Fail(c, ae.Status, ae.Code, ae.Message)
		return
	}
	InternalError(c)
}
