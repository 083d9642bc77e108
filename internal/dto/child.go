package dto

// ── 儿童（아동）模块 DTO ──

// CreateChildRequest 登记儿童请求
type CreateChildRequest struct {
	Name      *string `json:"name"`
	Birthdate *string `json:"birthdate"` // YYYY-MM-DD
	ClassID   *int    `json:"classId"`
}

// DeleteChildResponse 级联删除结果
type DeleteChildResponse struct {
	Message             string              `json:"message"`
	DeletedChild        interface{}         `json:"deletedChild"`
	DeletedRecordCounts DeletedRecordCounts `json:"deletedRecordCounts"`
}

// DeletedRecordCounts 各关联表删除条数
type DeletedRecordCounts struct {
	DevelopmentEvaluations int64 `json:"developmentEvaluations"`
	ObservationLogs        int64 `json:"observationLogs"`
}
