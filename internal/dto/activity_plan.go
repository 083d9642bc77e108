package dto

// ── 활동계획模块 DTO ──

// PlanEntry 手工录入的单条计划（周/영역/활동명/내용/준비자료）
type PlanEntry struct {
	Week      *string `json:"week"`
	Area      *string `json:"area"`
	Name      *string `json:"name"`
	Content   *string `json:"content"`
	Materials *string `json:"materials"`
}

// StoredPlanEntry 校验并修剪后的持久化形态
type StoredPlanEntry struct {
	Week      string `json:"week"`
	Area      string `json:"area"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Materials string `json:"materials"`
}

// CreateActivityPlanRequest 创建活动计划请求
type CreateActivityPlanRequest struct {
	ClassID   *int        `json:"classId"`
	Theme     *string     `json:"theme"`
	StartDate *string     `json:"startDate"`
	EndDate   *string     `json:"endDate"`
	Age       *string     `json:"age"`
	Plans     []PlanEntry `json:"plans"`
}

// UpdateActivityPlanRequest 更新活动计划请求，字段均可选
type UpdateActivityPlanRequest struct {
	ClassID   *int        `json:"classId"`
	Theme     *string     `json:"theme"`
	StartDate *string     `json:"startDate"`
	EndDate   *string     `json:"endDate"`
	Age       *string     `json:"age"`
	Plans     []PlanEntry `json:"plans"`
}
