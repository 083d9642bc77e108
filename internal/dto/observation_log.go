package dto

// ── 월별관찰기록模块 DTO ──

// CreateObservationLogRequest 创建月别观察记录请求
type CreateObservationLogRequest struct {
	ChildID  *int    `json:"childId"`
	Month    *string `json:"month"`
	Keywords *string `json:"keywords"`
	Content  *string `json:"content"`
}

// UpdateObservationLogRequest 更新月别观察记录请求，字段均可选
type UpdateObservationLogRequest struct {
	Month    *string `json:"month"`
	Keywords *string `json:"keywords"`
	Content  *string `json:"content"`
}
