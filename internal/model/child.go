package model

// Child 儿童表 — 对应 children
type Child struct {
	ID        int    `gorm:"primaryKey"         json:"id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	Birthdate string `gorm:"type:text;not null" json:"birthdate"` // YYYY-MM-DD
	ClassID   int    `gorm:"not null"           json:"classId"`
}

// TableName 指定表名
func (Child) TableName() string { return "children" }

// ChildWithClass 儿童列表查询结果（联结班级名称/年龄段）
type ChildWithClass struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
	ClassID   int    `json:"classId"`
	ClassName string `json:"className"`
	ClassAge  string `json:"classAge"`
}
