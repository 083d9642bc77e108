package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hungryangel/early-childhood-auto-doc/pkg/dateutil"
)

// 보육과정 각 영역，提示词中逐项列出
var curriculumAreas = []string{"신체운동·건강", "의사소통", "사회관계", "예술경험", "자연탐구"}

// CurriculumFor 按연령대返回所属课程体系：0-2 → 표준보육과정，其余 → 누리과정
func CurriculumFor(ageGroup string) string {
	if ageGroup == "0-2" {
		return "표준보육과정"
	}
	return "누리과정"
}

// ActivityPlanPrompt 월간 활동계획 생성 프롬프트
func ActivityPlanPrompt(theme, startDate, endDate, ageGroup string, windows []dateutil.WeekWindow) string {
	weekNums := make([]int, len(windows))
	for i, w := range windows {
		weekNums[i] = w.Week
	}
	weeksJSON, _ := json.Marshal(weekNums)

	return fmt.Sprintf(`당신은 박사급 이상의 아동보육과정 전문가입니다. 보육교사가 쉽게 이해할 수 있도록 문서를 작성합니다.

월간 주제: %s
기간: %s ~ %s (%d주)
연령: %s세 (%s 기반)

주차별로 주제에 맞는 소주제를 생성하고, 각 주차의 %s 영역별로 아동이 이해하기 쉬운 활동명을 작성하세요. 활동내용은 활동영역을 반영하여 아동의 연령에 맞는 수준의 활동을 제시하세요. 준비자료는 활동에 따라 필요한 재료를 입력하세요.

출력 형식: JSON 배열, 각 주차 객체에 {week: 1, subtheme: '소주제', activities: [{area: '영역', activityName: '활동명', content: '내용', materials: '준비자료'} ... ]}

주차: %s`,
		theme, startDate, endDate, len(windows),
		ageGroup, CurriculumFor(ageGroup),
		strings.Join(curriculumAreas, ", "),
		string(weeksJSON))
}

// EvaluationPrompt 보육일지 평가 및 지원계획 생성 프롬프트
// previousPlan/tomorrowPlan 为空时使用占位说明
func EvaluationPrompt(keywords, ageGroup, previousPlan, tomorrowPlan string) string {
	if previousPlan == "" {
		previousPlan = "이전 계획 정보 없음"
	}
	if tomorrowPlan == "" {
		tomorrowPlan = "다음날 계획 정보 없음"
	}

	return fmt.Sprintf(`당신은 박사급 이상의 아동보육과정 전문가입니다. 보육교사가 쉽게 이해할 수 있도록 문서를 작성합니다.

평가 작성 시 '-했습니다.'라는 어체를 사용하지 않는다. '-한다., -했다.'로 어체를 지정한다.

연령: %s세 (%s 기준)
키워드: %s

어제 지원계획: %s
내일 활동계획: %s

어제 계획이 오늘 어떻게 반영되었는지, 오늘의 놀이활동(키워드 기반)을 평가하고, 내일의 구체적인 지원계획을 포함한 평가 및 지원계획을 작성해주세요. 아동의 발달 상황 관찰 내용은 별도로 작성하세요.

교사의 전문적인 관점에서의 제언은 포함하지 마세요. 날짜와 요일은 언급하지 마세요.

출력을 다음과 같이 포맷하세요:

**평가 및 지원계획:**

[어제 계획 반영, 오늘 놀이 평가, 내일 지원 계획을 번호 구분 없이 하나의 연결된 글로 상세히 작성]

**아동관찰:**

[아동의 발달 상황 관찰 내용을 상세히 작성]

모든 내용은 실무에서 바로 활용할 수 있도록 구체적이고 실용적으로 작성해주세요. 한국어로 작성해주세요.`,
		ageGroup, CurriculumFor(ageGroup), keywords, previousPlan, tomorrowPlan)
}

// ChildObservationPrompt 개별 아동관찰 생성 프롬프트；date 可为空
func ChildObservationPrompt(childName, ageGroup, keywords, date, curriculum string) string {
	dateLine := ""
	if date != "" {
		dateLine = fmt.Sprintf("날짜: %s\n", date)
	}

	return fmt.Sprintf(`당신은 박사급 이상의 아동보육과정 전문가입니다. 교사의 전문성이 드러날 수 있도록 아동의 관찰 내용을 작성합니다.

아동명: %s
연령: %s세 (%s 기준)
키워드: %s
%s
키워드를 기반으로 해당 아동의 발달 상황을 관찰한 상세한 내용을 작성해주세요. 연령에 맞는 발달 영역을 반영하고, 구체적이고 실용적인 관찰을 서술하세요. 한국어로 작성해주세요.`,
		childName, ageGroup, curriculum, keywords, dateLine)
}
