// Package schedule 实现保育日志的「하루 일과」编辑模型：
// 一个有序的时间段活动列表，支持增删、上下移动、时间编辑与固定行模板。
//
// 不变式：
//  1. 行顺序即保存顺序；
//  2. 显示标签恒等于 base + " (start ~ end)"（起止齐全时），由起止时间推导，不单独存储；
//  3. 结束时间编辑只向下一行的开始时间传播一次，不级联；
//  4. 固定行不可删除、不可移动，在模型层拒绝，而非只靠界面禁用。
package schedule

import (
	"errors"
	"strings"
)

// 실행결과（execution）허용값
const (
	ExecutionNone       = ""
	ExecutionDone       = "o"
	ExecutionSkipped    = "x"
	ExecutionExpanded   = "확장"
	ExecutionReduced    = "축소"
	ExecutionSubstitute = "대체"
)

var (
	ErrIndexOutOfRange  = errors.New("行索引越界")
	ErrRowFixed         = errors.New("固定行不允许该操作")
	ErrInvalidExecution = errors.New("无效的실행결과值")
)

// Item 一行日程。JSON 字段名与既有前端/存量数据保持一致。
type Item struct {
	Label     string `json:"time"` // 显示标签，含 "(start ~ end)" 后缀
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Activity  string `json:"activity"`
	Execution string `json:"execution"` // o / x / 확장 / 축소 / 대체 / 空
	Fixed     bool   `json:"fixed"`
}

// FixedItem 固定行模板条目（按班级持久化，标签不含时间后缀）
type FixedItem struct {
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Activity  string `json:"activity"`
}

// Schedule 有序日程列表
type Schedule []Item

// ValidExecution 校验실행결과枚举
func ValidExecution(v string) bool {
	switch v {
	case ExecutionNone, ExecutionDone, ExecutionSkipped,
		ExecutionExpanded, ExecutionReduced, ExecutionSubstitute:
		return true
	}
	return false
}

// BaseLabel 去掉标签中嵌入的 " (start ~ end)" 后缀
func BaseLabel(label string) string {
	if i := strings.Index(label, " ("); i >= 0 {
		return label[:i]
	}
	return label
}

// DefaultTemplate 返回十行固定的默认一日日程。
// indoorActivity 为「오전 실내놀이」行的活动内容，通常取当期활동계획。
func DefaultTemplate(indoorActivity string) Schedule {
	if indoorActivity == "" {
		indoorActivity = "실내놀이 활동 (활동계획에서 불러오기)"
	}

	s := Schedule{
		{Label: "등원 및 통합보육", StartTime: "09:00", EndTime: "10:00", Activity: "자유 놀이", Fixed: true},
		{Label: "오전간식", StartTime: "10:00", EndTime: "10:30", Activity: "간식", Fixed: true},
		{Label: "오전 실내놀이", StartTime: "10:30", EndTime: "11:30", Activity: indoorActivity, Fixed: true},
		{Label: "활동", StartTime: "11:30", EndTime: "12:00", Activity: "주요 활동", Fixed: true},
		{Label: "점심식사", StartTime: "12:00", EndTime: "12:30", Activity: "식사", Fixed: true},
		{Label: "낮잠 및 휴식", StartTime: "13:00", EndTime: "14:00", Activity: "휴식", Fixed: true},
		{Label: "바깥놀이(대체)", StartTime: "14:00", EndTime: "14:30", Activity: "야외 활동", Fixed: true},
		{Label: "오후놀이", StartTime: "14:30", EndTime: "15:30", Activity: "자유 놀이", Fixed: true},
		{Label: "오후간식", StartTime: "15:30", EndTime: "16:00", Activity: "간식", Fixed: true},
		{Label: "귀가 및 통합보육", StartTime: "16:00", EndTime: "17:00", Activity: "귀가", Fixed: true},
	}

	for i := range s {
		s.refreshLabel(i)
	}
	return s
}

// ApplyFixedTemplate 把按班级保存的固定行模板套到当前日程上。
// 按标签前缀匹配；命中行覆盖起止时间与活动并重新生成标签。
func (s Schedule) ApplyFixedTemplate(items []FixedItem) {
	for _, fi := range items {
		for i := range s {
			if strings.HasPrefix(s[i].Label, fi.Label) {
				s[i].StartTime = fi.StartTime
				s[i].EndTime = fi.EndTime
				s[i].Activity = fi.Activity
				s[i].Label = fi.Label
				s.refreshLabel(i)
				break
			}
		}
	}
}

// AddRow 追加一个空白非固定行
func (s *Schedule) AddRow() {
	*s = append(*s, Item{})
}

// DeleteRow 按索引删除行；固定行拒绝删除
func (s *Schedule) DeleteRow(i int) error {
	if i < 0 || i >= len(*s) {
		return ErrIndexOutOfRange
	}
	if (*s)[i].Fixed {
		return ErrRowFixed
	}
	*s = append((*s)[:i], (*s)[i+1:]...)
	return nil
}

// MoveUp 与上一行交换；首行为空操作；固定行拒绝移动
func (s Schedule) MoveUp(i int) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	if s[i].Fixed {
		return ErrRowFixed
	}
	if i == 0 {
		return nil
	}
	s[i-1], s[i] = s[i], s[i-1]
	return nil
}

// MoveDown 与下一行交换；末行为空操作；固定行拒绝移动
func (s Schedule) MoveDown(i int) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	if s[i].Fixed {
		return ErrRowFixed
	}
	if i == len(s)-1 {
		return nil
	}
	s[i], s[i+1] = s[i+1], s[i]
	return nil
}

// SetStartTime 编辑开始时间并刷新本行标签
func (s Schedule) SetStartTime(i int, v string) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	s[i].StartTime = v
	s.refreshLabel(i)
	return nil
}

// SetEndTime 编辑结束时间。
// 存在下一行时把该值填为下一行的开始时间（仅一步，不级联），
// 两行标签均重新生成。刻意不校验 start < end，沿用既有行为。
func (s Schedule) SetEndTime(i int, v string) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	s[i].EndTime = v
	if i+1 < len(s) {
		s[i+1].StartTime = v
		s.refreshLabel(i + 1)
	}
	s.refreshLabel(i)
	return nil
}

// SetActivity 编辑活动内容
func (s Schedule) SetActivity(i int, v string) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	s[i].Activity = v
	return nil
}

// SetExecution 编辑실행결과，枚举外的值拒绝
func (s Schedule) SetExecution(i int, v string) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	if !ValidExecution(v) {
		return ErrInvalidExecution
	}
	s[i].Execution = v
	return nil
}

// ToggleFixed 切换固定标记。
// 置为固定时按当前起止时间重新推导标签；取消固定不回退已有格式。
func (s Schedule) ToggleFixed(i int) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	s[i].Fixed = !s[i].Fixed
	if s[i].Fixed {
		s.refreshLabel(i)
	}
	return nil
}

// FixedItems 抽取固定行快照，作为按班级保存的模板。
// 标签为去后缀的 base；无标签的固定行跳过。
func (s Schedule) FixedItems() []FixedItem {
	items := make([]FixedItem, 0, len(s))
	for _, it := range s {
		if !it.Fixed || it.Label == "" {
			continue
		}
		items = append(items, FixedItem{
			Label:     BaseLabel(it.Label),
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
			Activity:  it.Activity,
		})
	}
	return items
}

// refreshLabel 重建第 i 行显示标签：base + " (start ~ end)"
// 起止时间任一为空时仅保留 base。
func (s Schedule) refreshLabel(i int) {
	base := BaseLabel(s[i].Label)
	if s[i].StartTime != "" && s[i].EndTime != "" {
		s[i].Label = base + " (" + s[i].StartTime + " ~ " + s[i].EndTime + ")"
	} else {
		s[i].Label = base
	}
}
