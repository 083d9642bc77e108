package model

import "time"

// ObservationLog 월별관찰기록表 — 对应 observation_logs
// 简化形态的观察记录，后续聚合进发展评价
type ObservationLog struct {
	ID        int       `gorm:"primaryKey"         json:"id"`
	ChildID   int       `gorm:"not null"           json:"childId"`
	Month     string    `gorm:"type:text;not null" json:"month"` // 月度标识（月首日期）
	Keywords  string    `gorm:"type:text;not null" json:"keywords"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName 指定表名
func (ObservationLog) TableName() string { return "observation_logs" }
