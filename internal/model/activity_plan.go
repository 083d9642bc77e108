package model

import "time"

// ActivityPlan 활동계획表 — 对应 activity_plans
// Plans 为原样保存的 JSON：手工提交为扁平条目数组，AI 生成为周结构数组
type ActivityPlan struct {
	ID        int       `gorm:"primaryKey"          json:"id"`
	ClassID   int       `gorm:"not null"            json:"classId"`
	Theme     string    `gorm:"type:text;not null"  json:"theme"`
	StartDate string    `gorm:"type:text;not null"  json:"startDate"` // YYYY-MM-DD
	EndDate   string    `gorm:"type:text;not null"  json:"endDate"`   // YYYY-MM-DD
	Age       string    `gorm:"type:text;not null"  json:"age"`
	Plans     RawJSON   `gorm:"type:jsonb;not null" json:"plans"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName 指定表名
func (ActivityPlan) TableName() string { return "activity_plans" }
