package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

// MustParamID 解析路径参数中的数字 id。
// 非法时写入 400 响应并返回 false，调用方应直接 return。
func MustParamID(c *gin.Context, name, code, message string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.BadRequest(c, code, message)
		return 0, false
	}
	return id, true
}

// QueryInt 解析可选的数字查询参数。
// 参数缺失返回 (nil, true)；存在但非数字时写入 400 响应并返回 false。
func QueryInt(c *gin.Context, name, code, message string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, code, message)
		return nil, false
	}
	return &v, true
}

// QueryIntDefault 解析带默认值的数字查询参数，非数字时取默认值
func QueryIntDefault(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
