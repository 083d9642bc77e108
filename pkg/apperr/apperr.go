package apperr

import (
	"fmt"
	"net/http"
)

// Error 业务错误：携带 HTTP 状态码与机器可读的错误代码
// 错误契约沿用前端约定：响应体为 {"error": message, "code": code}
type Error struct {
	Status  int    // HTTP 状态码
	Code    string // 机器可读错误代码，如 INVALID_CLASS_ID
	Message string // 面向调用方的错误描述
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// BadRequest 400 业务错误
func BadRequest(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

// BadRequestf 400 业务错误（格式化消息）
func BadRequestf(code, format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFound 404 业务错误
func NotFound(code, message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: message}
}

// Internal 500 业务错误
func Internal(code, message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: code, Message: message}
}
