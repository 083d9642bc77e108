package model

// Class 班级表 — 对应 classes
type Class struct {
	ID        int    `gorm:"primaryKey"              json:"id"`
	Age       string `gorm:"type:text;not null"      json:"age"` // 年龄段描述，如 "3-5세"
	ClassName string `gorm:"type:text;not null"      json:"className"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }
