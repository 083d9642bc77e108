package dto

import (
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
)

// ── 관찰기록模块 DTO ──

// CreateObservationRequest 创建观察记录请求
type CreateObservationRequest struct {
	ChildID        *int                     `json:"childId"`
	Date           *string                  `json:"date"`
	Time           string                   `json:"time"`
	Domain         *string                  `json:"domain"`
	Tags           []string                 `json:"tags"`
	Summary        *string                  `json:"summary"`
	Detail         string                   `json:"detail"`
	Media          []model.ObservationMedia `json:"media"`
	Author         *string                  `json:"author"`
	FollowUps      []string                 `json:"followUps"`
	LinkedToReport bool                     `json:"linkedToReport"`
}

// UpdateObservationRequest 更新观察记录请求，字段均可选
type UpdateObservationRequest struct {
	ChildID        *int                      `json:"childId"`
	Date           *string                   `json:"date"`
	Time           *string                   `json:"time"`
	Domain         *string                   `json:"domain"`
	Tags           *[]string                 `json:"tags"`
	Summary        *string                   `json:"summary"`
	Detail         *string                   `json:"detail"`
	Media          *[]model.ObservationMedia `json:"media"`
	Author         *string                   `json:"author"`
	FollowUps      *[]string                 `json:"followUps"`
	LinkedToReport *bool                     `json:"linkedToReport"`
}

// ObservationListResponse 列表响应：분页 entries + 전체 건수 + 일자별 건수
type ObservationListResponse struct {
	DailyCounts map[string]int      `json:"dailyCounts"`
	TotalCount  int64               `json:"totalCount"`
	Entries     []model.Observation `json:"entries"`
}

// ObservationListQuery 列表查询参数（handler 解析后传给 service）
type ObservationListQuery struct {
	ChildID int
	Month   string
	Domain  string
	Tags    []string
	Search  string
	Limit   int
	Offset  int
}

// ToFilter 转换为仓储层过滤条件
func (q ObservationListQuery) ToFilter() repository.ObservationFilter {
	childID := q.ChildID
	return repository.ObservationFilter{
		ChildID: &childID,
		Month:   q.Month,
		Domain:  q.Domain,
		Tags:    q.Tags,
		Search:  q.Search,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
}
