// Package dateutil 集中日期/时间字符串的校验与周次计算。
// 所有接口层日期一律为 YYYY-MM-DD 文本，与数据库存储格式一致。
package dateutil

import (
	"regexp"
	"time"
)

// Layout 接口层统一日期格式
const Layout = "2006-01-02"

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidDate 校验 YYYY-MM-DD 格式且为真实存在的日历日期
// "2024-02-30"、"24-01-01"、"2024-13-01" 均不通过
func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return false
	}
	// time.Parse 会把 02-30 规整为 03-01，需反向比对
	return t.Format(Layout) == s
}

// ValidTime 校验 HH:MM（24 小时制）
func ValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// ValidMonth 校验 YYYY-MM
func ValidMonth(s string) bool {
	if !monthRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// MustParse 解析已通过 ValidDate 的日期字符串
func MustParse(s string) time.Time {
	t, _ := time.Parse(Layout, s)
	return t
}

// AddDays 对 YYYY-MM-DD 字符串做天数偏移
func AddDays(s string, days int) string {
	return MustParse(s).AddDate(0, 0, days).Format(Layout)
}

// MonthsBetween 计算两个日期间的整月数（按年月差，不看日）
// 用于发展评价的「N개월」月龄计算
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// WeekWindow 以周一为起点的一周窗口
type WeekWindow struct {
	Week  int    // 从 1 开始的周次
	Start string // 周一，YYYY-MM-DD
	End   string // 周日，YYYY-MM-DD
}

// StartOfWeek 返回 t 所在周的周一
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0
	return t.AddDate(0, 0, -offset)
}

// WeekWindows 把 [start, end] 日期段切成周一起始的周窗口
// 周数为首尾日期的整周差加一，与原活动计划生成逻辑一致
func WeekWindows(start, end time.Time) []WeekWindow {
	total := int(end.Sub(start).Hours()/24/7) + 1
	if total < 1 {
		total = 1
	}

	windows := make([]WeekWindow, 0, total)
	cur := StartOfWeek(start)
	for i := 0; i < total; i++ {
		windows = append(windows, WeekWindow{
			Week:  i + 1,
			Start: cur.Format(Layout),
			End:   cur.AddDate(0, 0, 6).Format(Layout),
		})
		cur = cur.AddDate(0, 0, 7)
	}
	return windows
}
