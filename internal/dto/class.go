package dto

// ── 班级（우리반）模块 DTO ──

// CreateClassRequest 创建班级请求
type CreateClassRequest struct {
	Age       *string `json:"age"`
	ClassName *string `json:"className"`
}

// UpdateClassRequest 更新班级请求，字段均可选
type UpdateClassRequest struct {
	Age       *string `json:"age"`
	ClassName *string `json:"className"`
}
