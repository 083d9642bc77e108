package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// 발달 영역（domain）枚举
var ValidDomains = []string{"전반", "신체", "의사소통", "사회", "예술", "자연"}

// ValidDomain 校验발달영역取值
func ValidDomain(d string) bool {
	for _, v := range ValidDomains {
		if d == v {
			return true
		}
	}
	return false
}

// ObservationMedia 观察记录附件
type ObservationMedia struct {
	Type string `json:"type"` // image | video
	URL  string `json:"url"`
	Alt  string `json:"alt"`
}

// MediaList 附件 JSONB 列
type MediaList []ObservationMedia

func (l *MediaList) Scan(src interface{}) error {
	b, err := scanBytes(src)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*l = MediaList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

func (l MediaList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Observation 관찰기록表 — 对应 observations
// 富形态的观察记录：발달영역、태그、媒体、후속조치
type Observation struct {
	ID             int        `gorm:"primaryKey"          json:"id"`
	ChildID        int        `gorm:"not null"            json:"childId"`
	UserID         *string    `gorm:"type:text"           json:"userId,omitempty"`
	Date           string     `gorm:"type:text;not null"  json:"date"` // YYYY-MM-DD
	Time           string     `gorm:"type:text"           json:"time"` // HH:MM，可为空
	Domain         string     `gorm:"type:text;not null"  json:"domain"`
	Tags           StringList `gorm:"type:jsonb;not null" json:"tags"`
	Summary        string     `gorm:"type:text;not null"  json:"summary"`
	Detail         string     `gorm:"type:text"           json:"detail"`
	Media          MediaList  `gorm:"type:jsonb;not null" json:"media"`
	Author         string     `gorm:"type:text;not null"  json:"author"`
	FollowUps      StringList `gorm:"column:follow_ups;type:jsonb;not null" json:"followUps"`
	LinkedToReport bool       `gorm:"not null;default:false" json:"linkedToReport"`
	CreatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName 指定表名
func (Observation) TableName() string { return "observations" }
