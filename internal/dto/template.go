package dto

import "github.com/hungryangel/early-childhood-auto-doc/internal/schedule"

// ── KV 저장（고정 일과 템플릿 / 리포트 바구니）DTO ──

// ScheduleTemplateResponse 班级固定日程模板
type ScheduleTemplateResponse struct {
	ClassID int                  `json:"classId"`
	Items   []schedule.FixedItem `json:"items"`
}

// SaveScheduleTemplateRequest 覆盖保存模板请求
type SaveScheduleTemplateRequest struct {
	Items []schedule.FixedItem `json:"items"`
}

// ReportBasketResponse 固定（핀）观察记录 id 集合
type ReportBasketResponse struct {
	ObservationIDs []int `json:"observationIds"`
}

// SaveReportBasketRequest 覆盖保存리포트 바구니请求
type SaveReportBasketRequest struct {
	ObservationIDs []int `json:"observationIds"`
}
