package model

import "time"

// DevelopmentEvaluation 발달평가表 — 对应 development_evaluations
type DevelopmentEvaluation struct {
	ID                     int       `gorm:"primaryKey"         json:"id"`
	ChildID                int       `gorm:"not null"           json:"childId"`
	Period                 string    `gorm:"type:text;not null" json:"period"`
	OverallCharacteristics string    `gorm:"type:text;not null" json:"overallCharacteristics"`
	ParentMessage          string    `gorm:"type:text;not null" json:"parentMessage"`
	Observations           string    `gorm:"type:text;not null" json:"observations"`    // 由观察记录聚合
	AgeAtEvaluation        string    `gorm:"type:text;not null" json:"ageAtEvaluation"` // "N개월"
	CreatedAt              time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName 指定表名
func (DevelopmentEvaluation) TableName() string { return "development_evaluations" }
