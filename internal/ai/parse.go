package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// PlanParseResult 活动计划 JSON 解析结果
// Parsed=false 表示模型输出无法解析，Plan 为空数组
type PlanParseResult struct {
	Plan   json.RawMessage
	Parsed bool
}

// ParsePlanJSON 解析模型返回的활동계획文本。
// 先按完整 JSON 解析；失败时截取首个 '[' 到末个 ']' 的子串重试；
// 仍失败则返回空数组并标记 Parsed=false
func ParsePlanJSON(text string) PlanParseResult {
	raw := strings.TrimSpace(text)

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return PlanParseResult{Plan: json.RawMessage(raw), Parsed: true}
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start != -1 && end > start {
		sub := raw[start : end+1]
		if err := json.Unmarshal([]byte(sub), &arr); err == nil {
			return PlanParseResult{Plan: json.RawMessage(sub), Parsed: true}
		}
	}

	return PlanParseResult{Plan: json.RawMessage("[]"), Parsed: false}
}

// 평가 및 지원계획 섹션：헤더 이후부터 **아동관찰:** 직전 또는 본문 끝까지
var evaluationSectionRe = regexp.MustCompile(`(?is)\*\*평가 및 지원계획:\*\*\s*(.*?)(?:\*\*아동관찰:\*\*|$)`)

// ExtractEvaluationSection 从生成文本中抽取평가 및 지원계획段落；
// 未找到标题时原样返回全文
func ExtractEvaluationSection(text string) string {
	m := evaluationSectionRe.FindStringSubmatch(text)
	if m == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(m[1])
}
