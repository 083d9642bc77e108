package dto

// ── 발달평가模块 DTO ──

// CreateDevelopmentEvaluationRequest 创建发育评价请求
type CreateDevelopmentEvaluationRequest struct {
	ChildID                *int    `json:"childId"`
	Period                 *string `json:"period"`
	OverallCharacteristics *string `json:"overallCharacteristics"`
	ParentMessage          *string `json:"parentMessage"`
}

// UpdateDevelopmentEvaluationRequest 更新发育评价请求，字段均可选
type UpdateDevelopmentEvaluationRequest struct {
	Period                 *string `json:"period"`
	OverallCharacteristics *string `json:"overallCharacteristics"`
	ParentMessage          *string `json:"parentMessage"`
	Observations           *string `json:"observations"`
	AgeAtEvaluation        *string `json:"ageAtEvaluation"`
}
