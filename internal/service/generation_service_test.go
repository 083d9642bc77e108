package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
)

// ── 测试辅助 ──

func setupTestGenerationService(gen *fakeTextGenerator) (GenerationService, *testRepos) {
	repo, mocks := newTestRepos()
	_ = mocks.class.Create(context.Background(), &model.Class{Age: "0-2", ClassName: "햇살반"})
	svc := NewGenerationService(repo, gen, time.Second, zap.NewNop())
	return svc, mocks
}

// ── GenerateActivityPlan 测试 ──

func TestGenerationService_ActivityPlan_PersistsParsedPlan(t *testing.T) {
	gen := &fakeTextGenerator{
		response: "```json\n[{\"week\":\"1주\",\"days\":[]}]\n```",
	}
	svc, mocks := setupTestGenerationService(gen)

	resp, err := svc.GenerateActivityPlan(context.Background(), &dto.GenerateActivityPlanRequest{
		Theme:     strPtr("봄과 자연"),
		StartDate: strPtr("2024-03-04"),
		EndDate:   strPtr("2024-03-29"),
		AgeGroup:  strPtr("0-2"),
	})
	if err != nil {
		t.Fatalf("GenerateActivityPlan 应成功: %v", err)
	}
	if !resp.Success {
		t.Error("期望 success=true")
	}
	if !strings.HasPrefix(string(resp.Plan), "[") {
		t.Errorf("应从 markdown 包裹中提取 JSON 数组: %s", resp.Plan)
	}

	// 计划应持久化到第一个班级
	if len(mocks.activityPlan.plans) != 1 {
		t.Fatalf("期望保存 1 条计划，实际 %d", len(mocks.activityPlan.plans))
	}
	saved := mocks.activityPlan.plans[1]
	if saved.ClassID != 1 || saved.Theme != "봄과 자연" {
		t.Errorf("保存的计划不符: %+v", saved)
	}
}

func TestGenerationService_ActivityPlan_PromptCarriesWeeks(t *testing.T) {
	gen := &fakeTextGenerator{response: "[]"}
	svc, _ := setupTestGenerationService(gen)

	_, err := svc.GenerateActivityPlan(context.Background(), &dto.GenerateActivityPlanRequest{
		Theme:     strPtr("봄과 자연"),
		StartDate: strPtr("2024-03-04"),
		EndDate:   strPtr("2024-03-22"),
		AgeGroup:  strPtr("0-2"),
	})
	if err != nil {
		t.Fatalf("GenerateActivityPlan 应成功: %v", err)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("期望调用生成器 1 次，实际 %d", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "(3주)") || !strings.Contains(prompt, "봄과 자연") {
		t.Errorf("提示词应包含周数与主题: %s", prompt)
	}
	if !strings.Contains(prompt, "표준보육과정") {
		t.Errorf("0-2 연령은 표준보육과정 기준이어야 함")
	}
}

func TestGenerationService_ActivityPlan_GenerationFailed(t *testing.T) {
	gen := &fakeTextGenerator{err: errors.New("接口超时")}
	svc, mocks := setupTestGenerationService(gen)

	_, err := svc.GenerateActivityPlan(context.Background(), &dto.GenerateActivityPlanRequest{
		Theme:     strPtr("봄과 자연"),
		StartDate: strPtr("2024-03-04"),
		EndDate:   strPtr("2024-03-29"),
		AgeGroup:  strPtr("0-2"),
	})
	assertCode(t, err, "GENERATION_FAILED")
	if len(mocks.activityPlan.plans) != 0 {
		t.Error("生成失败不应保存计划")
	}
}

func TestGenerationService_ActivityPlan_NoClasses(t *testing.T) {
	repo, _ := newTestRepos() // 无任何班级
	svc := NewGenerationService(repo, &fakeTextGenerator{response: "[]"}, time.Second, zap.NewNop())

	_, err := svc.GenerateActivityPlan(context.Background(), &dto.GenerateActivityPlanRequest{
		Theme:     strPtr("봄과 자연"),
		StartDate: strPtr("2024-03-04"),
		EndDate:   strPtr("2024-03-29"),
		AgeGroup:  strPtr("0-2"),
	})
	assertCode(t, err, "NO_CLASSES_FOUND")
}

func TestGenerationService_ActivityPlan_InvalidAgeGroup(t *testing.T) {
	svc, _ := setupTestGenerationService(&fakeTextGenerator{response: "[]"})

	_, err := svc.GenerateActivityPlan(context.Background(), &dto.GenerateActivityPlanRequest{
		Theme:     strPtr("봄과 자연"),
		StartDate: strPtr("2024-03-04"),
		EndDate:   strPtr("2024-03-29"),
		AgeGroup:  strPtr("6-7"),
	})
	assertCode(t, err, "INVALID_AGE_GROUP")
}

// ── GenerateEvaluation 测试 ──

func TestGenerationService_Evaluation_ContextFromAdjacentDays(t *testing.T) {
	gen := &fakeTextGenerator{response: "**평가 및 지원계획:** 생성된 평가 전문"}
	svc, mocks := setupTestGenerationService(gen)
	ctx := context.Background()

	// 어제 일지의 지원계획
	_ = mocks.childcareLog.Upsert(ctx, &model.ChildcareLog{
		ClassID: 1, Date: "2024-03-03", SupportPlan: "어제의 지원계획",
	})
	// 내일을 덮는 활동계획
	_ = mocks.activityPlan.Create(ctx, &model.ActivityPlan{
		ClassID: 1, Theme: "봄과 자연", StartDate: "2024-03-04", EndDate: "2024-03-29",
		Age: "0-2", Plans: model.RawJSON(`[{"week":"1주"}]`),
	})

	resp, err := svc.GenerateEvaluation(ctx, &dto.GenerateEvaluationRequest{
		Keywords: strPtr("블록놀이"),
		Date:     strPtr("2024-03-04"),
		AgeGroup: strPtr("0-2"),
	})
	if err != nil {
		t.Fatalf("GenerateEvaluation 应成功: %v", err)
	}
	if resp.Evaluation != "생성된 평가 전문" {
		t.Errorf("应返回평가 섹션正文: %q", resp.Evaluation)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "어제의 지원계획") {
		t.Errorf("提示词应包含어제 지원계획: %s", prompt)
	}
	if !strings.Contains(prompt, `{"week":"1주"}`) {
		t.Errorf("提示词应包含내일 활동계획: %s", prompt)
	}
}

func TestGenerationService_Evaluation_KeepsOnlyEvaluationSection(t *testing.T) {
	gen := &fakeTextGenerator{
		response: "**평가 및 지원계획:**\n\n오늘의 놀이를 평가한다.\n\n**아동관찰:**\n\n관찰 내용이다.",
	}
	svc, _ := setupTestGenerationService(gen)

	resp, err := svc.GenerateEvaluation(context.Background(), &dto.GenerateEvaluationRequest{
		Keywords: strPtr("블록놀이"),
		Date:     strPtr("2024-03-04"),
		AgeGroup: strPtr("0-2"),
	})
	if err != nil {
		t.Fatalf("GenerateEvaluation 应成功: %v", err)
	}
	if resp.Evaluation != "오늘의 놀이를 평가한다." {
		t.Errorf("应只保留평가 및 지원계획段: %q", resp.Evaluation)
	}
	if strings.Contains(resp.Evaluation, "아동관찰") {
		t.Errorf("아동관찰段不应出现在响应中: %q", resp.Evaluation)
	}
}

func TestGenerationService_Evaluation_NoHeaderReturnsWholeText(t *testing.T) {
	gen := &fakeTextGenerator{response: "  헤더 없는 평가 본문  "}
	svc, _ := setupTestGenerationService(gen)

	resp, err := svc.GenerateEvaluation(context.Background(), &dto.GenerateEvaluationRequest{
		Keywords: strPtr("블록놀이"),
		Date:     strPtr("2024-03-04"),
		AgeGroup: strPtr("0-2"),
	})
	if err != nil {
		t.Fatalf("GenerateEvaluation 应成功: %v", err)
	}
	if resp.Evaluation != "헤더 없는 평가 본문" {
		t.Errorf("无标题时应返回修剪后的全文: %q", resp.Evaluation)
	}
}

func TestGenerationService_Evaluation_PlaceholdersWhenNoContext(t *testing.T) {
	gen := &fakeTextGenerator{response: "생성 결과"}
	svc, _ := setupTestGenerationService(gen)

	_, err := svc.GenerateEvaluation(context.Background(), &dto.GenerateEvaluationRequest{
		Keywords: strPtr("블록놀이"),
		Date:     strPtr("2024-03-04"),
		AgeGroup: strPtr("0-2"),
	})
	if err != nil {
		t.Fatalf("GenerateEvaluation 应成功: %v", err)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "이전 계획 정보 없음") || !strings.Contains(prompt, "다음날 계획 정보 없음") {
		t.Errorf("无前后文时应使用占位文案: %s", prompt)
	}
}

func TestGenerationService_Evaluation_BlankOutput(t *testing.T) {
	gen := &fakeTextGenerator{response: "   \n  "}
	svc, _ := setupTestGenerationService(gen)

	_, err := svc.GenerateEvaluation(context.Background(), &dto.GenerateEvaluationRequest{
		Keywords: strPtr("블록놀이"),
		Date:     strPtr("2024-03-04"),
		AgeGroup: strPtr("0-2"),
	})
	assertCode(t, err, "GENERATION_FAILED")
}

func TestGenerationService_Evaluation_MissingKeywords(t *testing.T) {
	svc, _ := setupTestGenerationService(&fakeTextGenerator{response: "x"})

	_, err := svc.GenerateEvaluation(context.Background(), &dto.GenerateEvaluationRequest{
		Keywords: strPtr("  "),
		Date:     strPtr("2024-03-04"),
		AgeGroup: strPtr("0-2"),
	})
	assertCode(t, err, "MISSING_KEYWORDS")
}

// ── GenerateChildObservation 测试 ──

func TestGenerationService_ChildObservation_Success(t *testing.T) {
	gen := &fakeTextGenerator{response: "김하늘 유아는 블록놀이에 깊이 몰입하였다."}
	svc, _ := setupTestGenerationService(gen)

	resp, err := svc.GenerateChildObservation(context.Background(), &dto.GenerateChildObservationRequest{
		ChildName:  strPtr("김하늘"),
		AgeGroup:   strPtr("3-5"),
		Keywords:   strPtr("블록놀이"),
		Date:       "2024-03-04",
		Curriculum: strPtr("누리과정"),
	})
	if err != nil {
		t.Fatalf("GenerateChildObservation 应成功: %v", err)
	}
	if !resp.Success || resp.Observation == "" {
		t.Errorf("生成结果不符: %+v", resp)
	}
	if !strings.Contains(gen.prompts[0], "김하늘") || !strings.Contains(gen.prompts[0], "2024-03-04") {
		t.Errorf("提示词应包含儿童姓名与日期: %s", gen.prompts[0])
	}
}

func TestGenerationService_ChildObservation_MissingCurriculum(t *testing.T) {
	svc, _ := setupTestGenerationService(&fakeTextGenerator{response: "x"})

	_, err := svc.GenerateChildObservation(context.Background(), &dto.GenerateChildObservationRequest{
		ChildName: strPtr("김하늘"),
		AgeGroup:  strPtr("3-5"),
		Keywords:  strPtr("블록놀이"),
	})
	assertCode(t, err, "MISSING_CURRICULUM")
}
