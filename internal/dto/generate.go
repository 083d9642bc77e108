package dto

import "encoding/json"

// ── AI 생성模块 DTO ──

// GenerateActivityPlanRequest 월간 활동계획 생성请求
type GenerateActivityPlanRequest struct {
	Theme     *string `json:"theme"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	AgeGroup  *string `json:"ageGroup"` // "0-2" | "3-5"
}

// GenerateActivityPlanResponse 생성 결과
type GenerateActivityPlanResponse struct {
	Success bool            `json:"success"`
	Plan    json.RawMessage `json:"plan"`
}

// GenerateEvaluationRequest 보육일지 평가 생성请求
type GenerateEvaluationRequest struct {
	Keywords *string `json:"keywords"`
	Date     *string `json:"date"` // YYYY-MM-DD
	AgeGroup *string `json:"ageGroup"`
}

// GenerateEvaluationResponse 생성 결과，evaluation 为全文
type GenerateEvaluationResponse struct {
	Success    bool   `json:"success"`
	Evaluation string `json:"evaluation"`
}

// GenerateChildObservationRequest 아동관찰 생성请求
type GenerateChildObservationRequest struct {
	ChildName  *string `json:"childName"`
	AgeGroup   *string `json:"ageGroup"`
	Keywords   *string `json:"keywords"`
	Date       string  `json:"date"` // 可选
	Curriculum *string `json:"curriculum"`
}

// GenerateChildObservationResponse 생성 결과
type GenerateChildObservationResponse struct {
	Success     bool   `json:"success"`
	Observation string `json:"observation"`
}
