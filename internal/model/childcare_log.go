package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/hungryangel/early-childhood-auto-doc/internal/schedule"
)

// ScheduleItems 하루 일과 JSONB 列（有序日程行数组）
type ScheduleItems schedule.Schedule

func (s *ScheduleItems) Scan(src interface{}) error {
	b, err := scanBytes(src)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(b, s)
}

func (s ScheduleItems) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

// ChildcareLog 보육일지表 — 对应 childcare_logs
// (class_id, date) 唯一，保存即按该自然键 upsert
type ChildcareLog struct {
	ID                int           `gorm:"primaryKey"         json:"id"`
	ClassID           int           `gorm:"not null"           json:"classId"`
	Date              string        `gorm:"type:text;not null" json:"date"` // YYYY-MM-DD
	Keywords          string        `gorm:"type:text;not null" json:"keywords"`
	Evaluation        string        `gorm:"type:text;not null" json:"evaluation"`
	SupportPlan       string        `gorm:"type:text;not null" json:"supportPlan"`
	Schedule          ScheduleItems `gorm:"type:jsonb"         json:"schedule"`
	EvaluationContent *string       `gorm:"type:text"          json:"evaluationContent"`
	CreatedAt         time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt         time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName 指定表名
func (ChildcareLog) TableName() string { return "childcare_logs" }
