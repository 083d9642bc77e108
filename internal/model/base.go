package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ── JSONB 列的自定义类型（实现 GORM Scanner/Valuer） ──

func scanBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("不支持的 JSON 列源类型 %T", src)
	}
}

// StringList 对应 JSONB 字符串数组列
type StringList []string

func (l *StringList) Scan(src interface{}) error {
	b, err := scanBytes(src)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// RawJSON 原样保存的 JSONB 列。
// 활동계획의 plans 列有两种历史形态（手工扁平条目 / AI 周结构），按提交原文存取。
type RawJSON json.RawMessage

func (r *RawJSON) Scan(src interface{}) error {
	b, err := scanBytes(src)
	if err != nil {
		return err
	}
	*r = RawJSON(b)
	return nil
}

func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return string(r), nil
}

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawJSON) UnmarshalJSON(b []byte) error {
	*r = append((*r)[0:0], b...)
	return nil
}
