package dto

import "github.com/hungryangel/early-childhood-auto-doc/internal/schedule"

// ── 보육일지模块 DTO ──

// SaveChildcareLogRequest 保存（按 classId+date upsert）보육일지请求
type SaveChildcareLogRequest struct {
	ClassID     *int            `json:"classId"`
	Date        *string         `json:"date"`
	Keywords    string          `json:"keywords"`
	Evaluation  string          `json:"evaluation"`
	SupportPlan string          `json:"supportPlan"`
	Schedule    []schedule.Item `json:"schedule"`
}

// SaveEvaluationContentRequest 保存 AI 평가 전문请求
type SaveEvaluationContentRequest struct {
	ClassID           *int   `json:"classId"`
	EvaluationContent string `json:"evaluationContent"`
}

// EvaluationContentResponse 평가 전문响应
type EvaluationContentResponse struct {
	EvaluationContent *string `json:"evaluationContent"`
}
