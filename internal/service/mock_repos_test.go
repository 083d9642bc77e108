package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
)

// assertCode 断言返回了指定错误码的业务错误
func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("期望业务错误 %s，实际: %v", code, err)
	}
	if ae.Code != code {
		t.Errorf("期望错误码 %s，实际 %s", code, ae.Code)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[int]*model.Class
	nextID  int
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[int]*model.Class), nextID: 1}
}

func (m *mockClassRepo) sortedIDs() []int {
	ids := make([]int, 0, len(m.classes))
	for id := range m.classes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (m *mockClassRepo) List(_ context.Context) ([]model.Class, error) {
	var result []model.Class
	for _, id := range m.sortedIDs() {
		result = append(result, *m.classes[id])
	}
	return result, nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id int) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if class.ID == 0 {
		class.ID = m.nextID
		m.nextID++
	}
	copied := *class
	m.classes[class.ID] = &copied
	return nil
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	if _, ok := m.classes[class.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *class
	m.classes[class.ID] = &copied
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id int) error {
	delete(m.classes, id)
	return nil
}

func (m *mockClassRepo) First(_ context.Context) (*model.Class, error) {
	ids := m.sortedIDs()
	if len(ids) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m.classes[ids[0]]
	return &copied, nil
}

// ── Mock ChildRepository ──

type mockChildRepo struct {
	children map[int]*model.Child
	classes  *mockClassRepo // ListWithClass 联结用
	nextID   int
}

func newMockChildRepo(classes *mockClassRepo) *mockChildRepo {
	return &mockChildRepo{children: make(map[int]*model.Child), classes: classes, nextID: 1}
}

func (m *mockChildRepo) ListWithClass(_ context.Context) ([]model.ChildWithClass, error) {
	ids := make([]int, 0, len(m.children))
	for id := range m.children {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var result []model.ChildWithClass
	for _, id := range ids {
		c := m.children[id]
		row := model.ChildWithClass{
			ID:        c.ID,
			Name:      c.Name,
			Birthdate: c.Birthdate,
			ClassID:   c.ClassID,
		}
		if cls, ok := m.classes.classes[c.ClassID]; ok {
			row.ClassName = cls.ClassName
			row.ClassAge = cls.Age
		}
		result = append(result, row)
	}
	return result, nil
}

func (m *mockChildRepo) GetByID(_ context.Context, id int) (*model.Child, error) {
	if c, ok := m.children[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChildRepo) Create(_ context.Context, child *model.Child) error {
	if child.ID == 0 {
		child.ID = m.nextID
		m.nextID++
	}
	copied := *child
	m.children[child.ID] = &copied
	return nil
}

func (m *mockChildRepo) Delete(_ context.Context, id int) error {
	delete(m.children, id)
	return nil
}

// ── Mock ObservationLogRepository ──

type mockObservationLogRepo struct {
	logs   map[int]*model.ObservationLog
	nextID int

	deleteByChildErr error // 注入失败，验证级联删除回滚路径
}

func newMockObservationLogRepo() *mockObservationLogRepo {
	return &mockObservationLogRepo{logs: make(map[int]*model.ObservationLog), nextID: 1}
}

func (m *mockObservationLogRepo) List(_ context.Context, filter repository.ObservationLogFilter) ([]model.ObservationLog, error) {
	var result []model.ObservationLog
	for _, log := range m.logs {
		if log.ChildID != filter.ChildID {
			continue
		}
		if filter.StartMonth != "" && log.Month < filter.StartMonth {
			continue
		}
		if filter.EndMonth != "" && log.Month > filter.EndMonth {
			continue
		}
		result = append(result, *log)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month > result[j].Month })
	return result, nil
}

func (m *mockObservationLogRepo) ListByChild(_ context.Context, childID int) ([]model.ObservationLog, error) {
	var result []model.ObservationLog
	for _, log := range m.logs {
		if log.ChildID == childID {
			result = append(result, *log)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockObservationLogRepo) GetByID(_ context.Context, id int) (*model.ObservationLog, error) {
	if log, ok := m.logs[id]; ok {
		copied := *log
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockObservationLogRepo) Create(_ context.Context, log *model.ObservationLog) error {
	if log.ID == 0 {
		log.ID = m.nextID
		m.nextID++
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	copied := *log
	m.logs[log.ID] = &copied
	return nil
}

func (m *mockObservationLogRepo) Update(_ context.Context, log *model.ObservationLog) error {
	if _, ok := m.logs[log.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *log
	m.logs[log.ID] = &copied
	return nil
}

func (m *mockObservationLogRepo) Delete(_ context.Context, id int) error {
	delete(m.logs, id)
	return nil
}

func (m *mockObservationLogRepo) DeleteByChild(_ context.Context, childID int) (int64, error) {
	if m.deleteByChildErr != nil {
		return 0, m.deleteByChildErr
	}
	var count int64
	for id, log := range m.logs {
		if log.ChildID == childID {
			delete(m.logs, id)
			count++
		}
	}
	return count, nil
}

// ── Mock DevelopmentEvaluationRepository ──

type mockDevelopmentEvaluationRepo struct {
	evals  map[int]*model.DevelopmentEvaluation
	nextID int
}

func newMockDevelopmentEvaluationRepo() *mockDevelopmentEvaluationRepo {
	return &mockDevelopmentEvaluationRepo{evals: make(map[int]*model.DevelopmentEvaluation), nextID: 1}
}

func (m *mockDevelopmentEvaluationRepo) List(_ context.Context, childID int, period string) ([]model.DevelopmentEvaluation, error) {
	var result []model.DevelopmentEvaluation
	for _, e := range m.evals {
		if e.ChildID != childID {
			continue
		}
		if period != "" && e.Period != period {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockDevelopmentEvaluationRepo) GetByID(_ context.Context, id int) (*model.DevelopmentEvaluation, error) {
	if e, ok := m.evals[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDevelopmentEvaluationRepo) Create(_ context.Context, eval *model.DevelopmentEvaluation) error {
	if eval.ID == 0 {
		eval.ID = m.nextID
		m.nextID++
	}
	if eval.CreatedAt.IsZero() {
		eval.CreatedAt = time.Now()
	}
	copied := *eval
	m.evals[eval.ID] = &copied
	return nil
}

func (m *mockDevelopmentEvaluationRepo) Update(_ context.Context, eval *model.DevelopmentEvaluation) error {
	if _, ok := m.evals[eval.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *eval
	m.evals[eval.ID] = &copied
	return nil
}

func (m *mockDevelopmentEvaluationRepo) Delete(_ context.Context, id int) error {
	delete(m.evals, id)
	return nil
}

func (m *mockDevelopmentEvaluationRepo) DeleteByChild(_ context.Context, childID int) (int64, error) {
	var count int64
	for id, e := range m.evals {
		if e.ChildID == childID {
			delete(m.evals, id)
			count++
		}
	}
	return count, nil
}

// ── Mock ActivityPlanRepository ──

type mockActivityPlanRepo struct {
	plans  map[int]*model.ActivityPlan
	nextID int
}

func newMockActivityPlanRepo() *mockActivityPlanRepo {
	return &mockActivityPlanRepo{plans: make(map[int]*model.ActivityPlan), nextID: 1}
}

func (m *mockActivityPlanRepo) List(_ context.Context, filter repository.ActivityPlanFilter) ([]model.ActivityPlan, error) {
	var result []model.ActivityPlan
	for _, p := range m.plans {
		if filter.ClassID != nil && p.ClassID != *filter.ClassID {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockActivityPlanRepo) GetByID(_ context.Context, id int) (*model.ActivityPlan, error) {
	if p, ok := m.plans[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityPlanRepo) Create(_ context.Context, plan *model.ActivityPlan) error {
	if plan.ID == 0 {
		plan.ID = m.nextID
		m.nextID++
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}
	copied := *plan
	m.plans[plan.ID] = &copied
	return nil
}

func (m *mockActivityPlanRepo) Update(_ context.Context, plan *model.ActivityPlan) error {
	if _, ok := m.plans[plan.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *plan
	m.plans[plan.ID] = &copied
	return nil
}

func (m *mockActivityPlanRepo) Delete(_ context.Context, id int) error {
	delete(m.plans, id)
	return nil
}

func (m *mockActivityPlanRepo) FindCovering(_ context.Context, classID int, date string) (*model.ActivityPlan, error) {
	ids := make([]int, 0, len(m.plans))
	for id := range m.plans {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		p := m.plans[id]
		if p.ClassID == classID && p.StartDate <= date && date <= p.EndDate {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ChildcareLogRepository ──

type mockChildcareLogRepo struct {
	logs   map[string]*model.ChildcareLog // key: classID|date
	nextID int
}

func newMockChildcareLogRepo() *mockChildcareLogRepo {
	return &mockChildcareLogRepo{logs: make(map[string]*model.ChildcareLog), nextID: 1}
}

func childcareKey(classID int, date string) string {
	return fmt.Sprintf("%d#%s", classID, date)
}

func (m *mockChildcareLogRepo) sorted() []*model.ChildcareLog {
	result := make([]*model.ChildcareLog, 0, len(m.logs))
	for _, log := range m.logs {
		result = append(result, log)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (m *mockChildcareLogRepo) List(_ context.Context, filter repository.ChildcareLogFilter) ([]model.ChildcareLog, error) {
	var result []model.ChildcareLog
	for _, log := range m.sorted() {
		if filter.ClassID != nil && log.ClassID != *filter.ClassID {
			continue
		}
		if filter.StartDate != "" && log.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && log.Date > filter.EndDate {
			continue
		}
		result = append(result, *log)
	}
	return result, nil
}

func (m *mockChildcareLogRepo) ListByDate(_ context.Context, date string, classID *int) ([]model.ChildcareLog, error) {
	var result []model.ChildcareLog
	for _, log := range m.sorted() {
		if log.Date != date {
			continue
		}
		if classID != nil && log.ClassID != *classID {
			continue
		}
		result = append(result, *log)
	}
	return result, nil
}

func (m *mockChildcareLogRepo) ListByRange(_ context.Context, startDate, endDate string, classID *int) ([]model.ChildcareLog, error) {
	var result []model.ChildcareLog
	for _, log := range m.sorted() {
		if log.Date < startDate || log.Date > endDate {
			continue
		}
		if classID != nil && log.ClassID != *classID {
			continue
		}
		result = append(result, *log)
	}
	// 升序返回
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockChildcareLogRepo) GetByClassAndDate(_ context.Context, classID int, date string) (*model.ChildcareLog, error) {
	if log, ok := m.logs[childcareKey(classID, date)]; ok {
		copied := *log
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChildcareLogRepo) Upsert(_ context.Context, log *model.ChildcareLog) error {
	key := childcareKey(log.ClassID, log.Date)
	now := time.Now()
	if existing, ok := m.logs[key]; ok {
		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
		log.UpdatedAt = now
	} else {
		log.ID = m.nextID
		m.nextID++
		log.CreatedAt = now
		log.UpdatedAt = now
	}
	copied := *log
	m.logs[key] = &copied
	return nil
}

func (m *mockChildcareLogRepo) UpdateEvaluationContent(_ context.Context, classID int, date, content string) error {
	log, ok := m.logs[childcareKey(classID, date)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	log.EvaluationContent = &content
	log.UpdatedAt = time.Now()
	return nil
}

// ── Mock DailyObservationRepository ──

type mockDailyObservationRepo struct {
	records map[int]*model.DailyChildObservation
	nextID  int
}

func newMockDailyObservationRepo() *mockDailyObservationRepo {
	return &mockDailyObservationRepo{records: make(map[int]*model.DailyChildObservation), nextID: 1}
}

func (m *mockDailyObservationRepo) ListByClassAndDate(_ context.Context, classID int, date string) ([]model.DailyChildObservation, error) {
	var result []model.DailyChildObservation
	for _, rec := range m.records {
		if rec.ClassID == classID && rec.Date == date {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDailyObservationRepo) GetByID(_ context.Context, id int) (*model.DailyChildObservation, error) {
	if rec, ok := m.records[id]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDailyObservationRepo) Create(_ context.Context, obs *model.DailyChildObservation) error {
	if obs.ID == 0 {
		obs.ID = m.nextID
		m.nextID++
	}
	if obs.CreatedAt.IsZero() {
		obs.CreatedAt = time.Now()
	}
	copied := *obs
	m.records[obs.ID] = &copied
	return nil
}

func (m *mockDailyObservationRepo) UpdateObservation(_ context.Context, id int, observation string) error {
	rec, ok := m.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rec.Observation = observation
	return nil
}

func (m *mockDailyObservationRepo) Delete(_ context.Context, id int) error {
	delete(m.records, id)
	return nil
}

func (m *mockDailyObservationRepo) DeleteByChild(_ context.Context, childID int) (int64, error) {
	var count int64
	for id, rec := range m.records {
		if rec.ChildID == childID {
			delete(m.records, id)
			count++
		}
	}
	return count, nil
}

// ── Mock ObservationRepository ──

type mockObservationRepo struct {
	records map[int]*model.Observation
	nextID  int
}

func newMockObservationRepo() *mockObservationRepo {
	return &mockObservationRepo{records: make(map[int]*model.Observation), nextID: 1}
}

func (m *mockObservationRepo) match(rec *model.Observation, filter repository.ObservationFilter) bool {
	if filter.ChildID != nil && rec.ChildID != *filter.ChildID {
		return false
	}
	if filter.Month != "" && !strings.HasPrefix(rec.Date, filter.Month) {
		return false
	}
	if filter.Domain != "" && rec.Domain != filter.Domain {
		return false
	}
	if len(filter.Tags) > 0 {
		hit := false
		for _, want := range filter.Tags {
			for _, tag := range rec.Tags {
				if tag == want {
					hit = true
				}
			}
		}
		if !hit {
			return false
		}
	}
	if filter.Search != "" &&
		!strings.Contains(rec.Summary, filter.Search) &&
		!strings.Contains(rec.Detail, filter.Search) {
		return false
	}
	return true
}

func (m *mockObservationRepo) List(_ context.Context, filter repository.ObservationFilter) ([]model.Observation, int64, error) {
	var matched []model.Observation
	for _, rec := range m.records {
		if m.match(rec, filter) {
			matched = append(matched, *rec)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	start := filter.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *mockObservationRepo) DailyCounts(_ context.Context, filter repository.ObservationFilter) ([]repository.DailyCount, error) {
	counts := make(map[string]int)
	for _, rec := range m.records {
		if m.match(rec, filter) {
			counts[rec.Date]++
		}
	}
	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var result []repository.DailyCount
	for _, d := range dates {
		result = append(result, repository.DailyCount{Date: d, Count: counts[d]})
	}
	return result, nil
}

func (m *mockObservationRepo) GetByID(_ context.Context, id int) (*model.Observation, error) {
	if rec, ok := m.records[id]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockObservationRepo) Create(_ context.Context, obs *model.Observation) error {
	if obs.ID == 0 {
		obs.ID = m.nextID
		m.nextID++
	}
	now := time.Now()
	if obs.CreatedAt.IsZero() {
		obs.CreatedAt = now
		obs.UpdatedAt = now
	}
	copied := *obs
	m.records[obs.ID] = &copied
	return nil
}

func (m *mockObservationRepo) Update(_ context.Context, obs *model.Observation) error {
	if _, ok := m.records[obs.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	obs.UpdatedAt = time.Now()
	copied := *obs
	m.records[obs.ID] = &copied
	return nil
}

func (m *mockObservationRepo) Delete(_ context.Context, id int) error {
	delete(m.records, id)
	return nil
}

func (m *mockObservationRepo) DeleteByChild(_ context.Context, childID int) (int64, error) {
	var count int64
	for id, rec := range m.records {
		if rec.ChildID == childID {
			delete(m.records, id)
			count++
		}
	}
	return count, nil
}

// ── 假的文本生成器 ──

type fakeTextGenerator struct {
	response string
	err      error
	prompts  []string // 记录收到的提示词
}

func (f *fakeTextGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// ── 测试用仓储聚合 ──

type testRepos struct {
	class            *mockClassRepo
	child            *mockChildRepo
	observationLog   *mockObservationLogRepo
	developmentEval  *mockDevelopmentEvaluationRepo
	activityPlan     *mockActivityPlanRepo
	childcareLog     *mockChildcareLogRepo
	dailyObservation *mockDailyObservationRepo
	observation      *mockObservationRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		class:            newMockClassRepo(),
		observationLog:   newMockObservationLogRepo(),
		developmentEval:  newMockDevelopmentEvaluationRepo(),
		activityPlan:     newMockActivityPlanRepo(),
		childcareLog:     newMockChildcareLogRepo(),
		dailyObservation: newMockDailyObservationRepo(),
		observation:      newMockObservationRepo(),
	}
	mocks.child = newMockChildRepo(mocks.class)

	repo := &repository.Repository{
		Class:                 mocks.class,
		Child:                 mocks.child,
		ObservationLog:        mocks.observationLog,
		DevelopmentEvaluation: mocks.developmentEval,
		ActivityPlan:          mocks.activityPlan,
		ChildcareLog:          mocks.childcareLog,
		DailyObservation:      mocks.dailyObservation,
		Observation:           mocks.observation,
	}
	return repo, mocks
}
