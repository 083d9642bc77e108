package dto

// ── 일일 아동관찰模块 DTO ──

// CreateDailyObservationRequest 创建当日儿童观察请求
type CreateDailyObservationRequest struct {
	ClassID     *int    `json:"classId"`
	Date        *string `json:"date"`
	ChildID     *int    `json:"childId"`
	Observation *string `json:"observation"`
}

// UpdateDailyObservationRequest 更新观察正文请求
type UpdateDailyObservationRequest struct {
	Observation *string `json:"observation"`
}
