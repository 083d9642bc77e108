package model

import "time"

// DailyChildObservation 일일 아동관찰表 — 对应 daily_child_observations
// 业务上每 (班级, 日期, 儿童) 至多一条，未做数据库级唯一约束（沿用存量 schema）
type DailyChildObservation struct {
	ID          int       `gorm:"primaryKey"         json:"id"`
	ClassID     int       `gorm:"not null"           json:"classId"`
	Date        string    `gorm:"type:text;not null" json:"date"` // YYYY-MM-DD
	ChildID     int       `gorm:"not null"           json:"childId"`
	Observation string    `gorm:"type:text;not null" json:"observation"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName 指定表名
func (DailyChildObservation) TableName() string { return "daily_child_observations" }
