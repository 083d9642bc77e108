package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hungryangel/early-childhood-auto-doc/internal/dto"
	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock ClassService ──

type mockClassService struct {
	listResult   []model.Class
	listErr      error
	getResult    *model.Class
	getErr       error
	createResult *model.Class
	createErr    error
	updateResult *model.Class
	updateErr    error
	deleteResult *model.Class
	deleteErr    error
}

func (m *mockClassService) List(_ context.Context) ([]model.Class, error) {
	return m.listResult, m.listErr
}
func (m *mockClassService) GetByID(_ context.Context, _ int) (*model.Class, error) {
	return m.getResult, m.getErr
}
func (m *mockClassService) Create(_ context.Context, _ *dto.CreateClassRequest) (*model.Class, error) {
	return m.createResult, m.createErr
}
func (m *mockClassService) Update(_ context.Context, _ int, _ *dto.UpdateClassRequest) (*model.Class, error) {
	return m.updateResult, m.updateErr
}
func (m *mockClassService) Delete(_ context.Context, _ int) (*model.Class, error) {
	return m.deleteResult, m.deleteErr
}

// ── Mock ChildService ──

type mockChildService struct {
	listResult   []model.ChildWithClass
	listErr      error
	createResult *model.Child
	createErr    error
	deleteResult *dto.DeleteChildResponse
	deleteErr    error
}

func (m *mockChildService) List(_ context.Context) ([]model.ChildWithClass, error) {
	return m.listResult, m.listErr
}
func (m *mockChildService) Create(_ context.Context, _ *dto.CreateChildRequest) (*model.Child, error) {
	return m.createResult, m.createErr
}
func (m *mockChildService) Delete(_ context.Context, _ int) (*dto.DeleteChildResponse, error) {
	return m.deleteResult, m.deleteErr
}

// ── Mock ObservationLogService ──

type mockObservationLogService struct {
	listResult []model.ObservationLog
	listErr    error
	lastChild  int
	lastStart  string
	lastEnd    string
}

func (m *mockObservationLogService) List(_ context.Context, childID int, startMonth, endMonth string) ([]model.ObservationLog, error) {
	m.lastChild, m.lastStart, m.lastEnd = childID, startMonth, endMonth
	return m.listResult, m.listErr
}
func (m *mockObservationLogService) Create(_ context.Context, _ *dto.CreateObservationLogRequest) (*model.ObservationLog, error) {
	return nil, nil
}
func (m *mockObservationLogService) Update(_ context.Context, _ int, _ *dto.UpdateObservationLogRequest) (*model.ObservationLog, error) {
	return nil, nil
}
func (m *mockObservationLogService) Delete(_ context.Context, _ int) (*model.ObservationLog, error) {
	return nil, nil
}

// ── Mock ChildcareLogService ──

type mockChildcareLogService struct {
	listResult  []model.ChildcareLog
	listErr     error
	lastFilter  repository.ChildcareLogFilter
	saveResult  *model.ChildcareLog
	saveCreated bool
	saveErr     error
}

func (m *mockChildcareLogService) List(_ context.Context, filter repository.ChildcareLogFilter) ([]model.ChildcareLog, error) {
	m.lastFilter = filter
	return m.listResult, m.listErr
}
func (m *mockChildcareLogService) GetByDate(_ context.Context, _ string, _ *int) ([]model.ChildcareLog, error) {
	return m.listResult, m.listErr
}
func (m *mockChildcareLogService) Save(_ context.Context, _ *dto.SaveChildcareLogRequest) (*model.ChildcareLog, bool, error) {
	return m.saveResult, m.saveCreated, m.saveErr
}
func (m *mockChildcareLogService) Weekly(_ context.Context, _, _ string, _ *int) ([]model.ChildcareLog, error) {
	return m.listResult, m.listErr
}
func (m *mockChildcareLogService) GetEvaluationContent(_ context.Context, _ string, _ *int) (*dto.EvaluationContentResponse, error) {
	return nil, nil
}
func (m *mockChildcareLogService) SaveEvaluationContent(_ context.Context, _ string, _ *dto.SaveEvaluationContentRequest) (*model.ChildcareLog, bool, error) {
	return m.saveResult, m.saveCreated, m.saveErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportWeekly(_ context.Context, _, _ string, _ *int) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── Mock ObservationService ──

type mockObservationService struct {
	listResult *dto.ObservationListResponse
	listErr    error
	lastQuery  dto.ObservationListQuery
}

func (m *mockObservationService) List(_ context.Context, query dto.ObservationListQuery) (*dto.ObservationListResponse, error) {
	m.lastQuery = query
	return m.listResult, m.listErr
}
func (m *mockObservationService) Create(_ context.Context, _ *dto.CreateObservationRequest) (*model.Observation, error) {
	return nil, nil
}
func (m *mockObservationService) Update(_ context.Context, _ int, _ *dto.UpdateObservationRequest) (*model.Observation, error) {
	return nil, nil
}
func (m *mockObservationService) Delete(_ context.Context, _ int) (*model.Observation, error) {
	return nil, nil
}

// ── Mock DailyObservationService ──

type mockDailyObservationService struct {
	listResult []model.DailyChildObservation
	listErr    error
	updateErr  error
	deleteErr  error
}

func (m *mockDailyObservationService) List(_ context.Context, _ string, _ int) ([]model.DailyChildObservation, error) {
	return m.listResult, m.listErr
}
func (m *mockDailyObservationService) Create(_ context.Context, _ *dto.CreateDailyObservationRequest) (*model.DailyChildObservation, error) {
	return nil, nil
}
func (m *mockDailyObservationService) Update(_ context.Context, _ int, _ *dto.UpdateDailyObservationRequest) error {
	return m.updateErr
}
func (m *mockDailyObservationService) Delete(_ context.Context, _ int) error {
	return m.deleteErr
}

// ── Mock GenerationService ──

type mockGenerationService struct {
	evalResult *dto.GenerateEvaluationResponse
	evalErr    error
}

func (m *mockGenerationService) GenerateActivityPlan(_ context.Context, _ *dto.GenerateActivityPlanRequest) (*dto.GenerateActivityPlanResponse, error) {
	return nil, nil
}
func (m *mockGenerationService) GenerateEvaluation(_ context.Context, _ *dto.GenerateEvaluationRequest) (*dto.GenerateEvaluationResponse, error) {
	return m.evalResult, m.evalErr
}
func (m *mockGenerationService) GenerateChildObservation(_ context.Context, _ *dto.GenerateChildObservationRequest) (*dto.GenerateChildObservationResponse, error) {
	return nil, nil
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func doRequest(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func parseErrBody(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析错误响应失败: %v", err)
	}
	return body
}

// ═══════════════════════════════════════════════════════════
// ClassHandler Tests
// ═══════════════════════════════════════════════════════════

func TestClassHandler_ListClasses_ByIDQuery(t *testing.T) {
	mock := &mockClassService{
		listResult: []model.Class{{ID: 1, Age: "3-5", ClassName: "햇살반"}, {ID: 2, Age: "0-2", ClassName: "달님반"}},
		getResult:  &model.Class{ID: 2, Age: "0-2", ClassName: "달님반"},
	}
	h := NewClassHandler(mock)

	r := gin.New()
	r.GET("/api/classes", h.ListClasses)
	w := doRequest(r, "GET", "/api/classes?id=2", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var cls model.Class
	if err := json.Unmarshal(w.Body.Bytes(), &cls); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if cls.ID != 2 || cls.ClassName != "달님반" {
		t.Errorf("携带 id 时应返回单个班级, got %+v", cls)
	}
}

func TestClassHandler_ListClasses_InvalidIDQuery(t *testing.T) {
	h := NewClassHandler(&mockClassService{})

	r := gin.New()
	r.GET("/api/classes", h.ListClasses)
	w := doRequest(r, "GET", "/api/classes?id=abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "INVALID_ID" {
		t.Errorf("expected INVALID_ID, got %s", body.Code)
	}
}

func TestClassHandler_ListClasses_ByIDNotFound(t *testing.T) {
	mock := &mockClassService{
		getErr: apperr.NotFound("", "Class not found"),
	}
	h := NewClassHandler(mock)

	r := gin.New()
	r.GET("/api/classes", h.ListClasses)
	w := doRequest(r, "GET", "/api/classes?id=99", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Error != "Class not found" {
		t.Errorf("expected Class not found, got %s", body.Error)
	}
}

func TestClassHandler_CreateClass_Success(t *testing.T) {
	mock := &mockClassService{
		createResult: &model.Class{ID: 1, Age: "3-5", ClassName: "햇살반"},
	}
	h := NewClassHandler(mock)

	r := gin.New()
	r.POST("/api/classes", h.CreateClass)
	w := doRequest(r, "POST", "/api/classes", jsonBody(map[string]string{
		"age":       "3-5",
		"className": "햇살반",
	}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	var cls model.Class
	if err := json.Unmarshal(w.Body.Bytes(), &cls); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if cls.ClassName != "햇살반" {
		t.Errorf("expected className 햇살반, got %s", cls.ClassName)
	}
}

func TestClassHandler_CreateClass_BadJSON(t *testing.T) {
	h := NewClassHandler(&mockClassService{})

	r := gin.New()
	r.POST("/api/classes", h.CreateClass)
	w := doRequest(r, "POST", "/api/classes", bytes.NewReader([]byte("not json")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "INVALID_FIELD_TYPE" {
		t.Errorf("expected INVALID_FIELD_TYPE, got %s", body.Code)
	}
}

func TestClassHandler_UpdateClass_NotFound(t *testing.T) {
	mock := &mockClassService{
		updateErr: apperr.NotFound("CLASS_NOT_FOUND", "Class not found"),
	}
	h := NewClassHandler(mock)

	r := gin.New()
	r.PUT("/api/classes/:id", h.UpdateClass)
	w := doRequest(r, "PUT", "/api/classes/99", jsonBody(map[string]string{"className": "달님반"}))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "CLASS_NOT_FOUND" {
		t.Errorf("expected CLASS_NOT_FOUND, got %s", body.Code)
	}
}

func TestClassHandler_UpdateClass_InvalidID(t *testing.T) {
	h := NewClassHandler(&mockClassService{})

	r := gin.New()
	r.PUT("/api/classes/:id", h.UpdateClass)
	w := doRequest(r, "PUT", "/api/classes/abc", jsonBody(map[string]string{"className": "달님반"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "INVALID_CLASS_ID" {
		t.Errorf("expected INVALID_CLASS_ID, got %s", body.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ChildHandler Tests
// ═══════════════════════════════════════════════════════════

func TestChildHandler_ListChildren_JoinsClass(t *testing.T) {
	mock := &mockChildService{
		listResult: []model.ChildWithClass{
			{ID: 1, Name: "김민준", Birthdate: "2021-04-02", ClassID: 1, ClassName: "햇살반", ClassAge: "3-5"},
		},
	}
	h := NewChildHandler(mock)

	r := gin.New()
	r.GET("/api/children", h.ListChildren)
	w := doRequest(r, "GET", "/api/children", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var children []model.ChildWithClass
	if err := json.Unmarshal(w.Body.Bytes(), &children); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(children) != 1 || children[0].ClassName != "햇살반" {
		t.Errorf("expected joined class name, got %+v", children)
	}
}

func TestChildHandler_ListChildren_EmptyIsArray(t *testing.T) {
	h := NewChildHandler(&mockChildService{})

	r := gin.New()
	r.GET("/api/children", h.ListChildren)
	w := doRequest(r, "GET", "/api/children", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}

func TestChildHandler_DeleteChild_InvalidID(t *testing.T) {
	h := NewChildHandler(&mockChildService{})

	r := gin.New()
	r.DELETE("/api/children/:id", h.DeleteChild)
	w := doRequest(r, "DELETE", "/api/children/abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "INVALID_CHILD_ID" {
		t.Errorf("expected INVALID_CHILD_ID, got %s", body.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ObservationLogHandler Tests
// ═══════════════════════════════════════════════════════════

func TestObservationLogHandler_List_MissingChildID(t *testing.T) {
	h := NewObservationLogHandler(&mockObservationLogService{})

	r := gin.New()
	r.GET("/api/observation-logs", h.ListObservationLogs)
	w := doRequest(r, "GET", "/api/observation-logs", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "MISSING_CHILD_ID" {
		t.Errorf("expected MISSING_CHILD_ID, got %s", body.Code)
	}
}

func TestObservationLogHandler_List_PassesMonthRange(t *testing.T) {
	mock := &mockObservationLogService{}
	h := NewObservationLogHandler(mock)

	r := gin.New()
	r.GET("/api/observation-logs", h.ListObservationLogs)
	w := doRequest(r, "GET", "/api/observation-logs?childId=3&startMonth=2024-01&endMonth=2024-03", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastChild != 3 || mock.lastStart != "2024-01" || mock.lastEnd != "2024-03" {
		t.Errorf("query 参数未正确传递: child=%d start=%s end=%s", mock.lastChild, mock.lastStart, mock.lastEnd)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}

// ═══════════════════════════════════════════════════════════
// ChildcareLogHandler Tests
// ═══════════════════════════════════════════════════════════

func TestChildcareLogHandler_Save_CreatedReturns201(t *testing.T) {
	mock := &mockChildcareLogService{
		saveResult:  &model.ChildcareLog{ID: 1, ClassID: 1, Date: "2024-03-04"},
		saveCreated: true,
	}
	h := NewChildcareLogHandler(mock, &mockExportService{})

	r := gin.New()
	r.POST("/api/childcare-logs", h.SaveChildcareLog)
	w := doRequest(r, "POST", "/api/childcare-logs", jsonBody(map[string]interface{}{
		"classId": 1, "date": "2024-03-04",
	}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestChildcareLogHandler_Save_OverwriteReturns200(t *testing.T) {
	mock := &mockChildcareLogService{
		saveResult:  &model.ChildcareLog{ID: 1, ClassID: 1, Date: "2024-03-04"},
		saveCreated: false,
	}
	h := NewChildcareLogHandler(mock, &mockExportService{})

	r := gin.New()
	r.POST("/api/childcare-logs", h.SaveChildcareLog)
	w := doRequest(r, "POST", "/api/childcare-logs", jsonBody(map[string]interface{}{
		"classId": 1, "date": "2024-03-04",
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestChildcareLogHandler_List_InvalidClassID(t *testing.T) {
	h := NewChildcareLogHandler(&mockChildcareLogService{}, &mockExportService{})

	r := gin.New()
	r.GET("/api/childcare-logs", h.ListChildcareLogs)
	w := doRequest(r, "GET", "/api/childcare-logs?classId=abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "INVALID_CLASS_ID" {
		t.Errorf("expected INVALID_CLASS_ID, got %s", body.Code)
	}
}

func TestChildcareLogHandler_List_PassesFilter(t *testing.T) {
	mock := &mockChildcareLogService{}
	h := NewChildcareLogHandler(mock, &mockExportService{})

	r := gin.New()
	r.GET("/api/childcare-logs", h.ListChildcareLogs)
	w := doRequest(r, "GET", "/api/childcare-logs?classId=2&startDate=2024-03-01&endDate=2024-03-31&limit=5&offset=10", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	f := mock.lastFilter
	if f.ClassID == nil || *f.ClassID != 2 || f.StartDate != "2024-03-01" || f.EndDate != "2024-03-31" || f.Limit != 5 || f.Offset != 10 {
		t.Errorf("过滤条件未正确传递: %+v", f)
	}
}

func TestChildcareLogHandler_Export_SetsHeaders(t *testing.T) {
	export := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "주간보육일지_2024-03-04.xlsx",
	}
	h := NewChildcareLogHandler(&mockChildcareLogService{}, export)

	r := gin.New()
	r.GET("/api/childcare-logs/weekly/export", h.ExportWeeklyChildcareLogs)
	w := doRequest(r, "GET", "/api/childcare-logs/weekly/export?startDate=2024-03-04&endDate=2024-03-08", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("expected xlsx content type, got %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd == "" || !bytes.Contains([]byte(cd), []byte("attachment")) {
		t.Errorf("expected attachment disposition, got %s", cd)
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Errorf("响应体应为导出的文件内容, got %s", w.Body.String())
	}
}

func TestChildcareLogHandler_Export_InvalidRange(t *testing.T) {
	export := &mockExportService{
		err: apperr.BadRequest("INVALID_DATE_RANGE", "startDate and endDate must be valid dates"),
	}
	h := NewChildcareLogHandler(&mockChildcareLogService{}, export)

	r := gin.New()
	r.GET("/api/childcare-logs/weekly/export", h.ExportWeeklyChildcareLogs)
	w := doRequest(r, "GET", "/api/childcare-logs/weekly/export?startDate=bad", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "INVALID_DATE_RANGE" {
		t.Errorf("expected INVALID_DATE_RANGE, got %s", body.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ObservationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestObservationHandler_List_ParsesQuery(t *testing.T) {
	mock := &mockObservationService{
		listResult: &dto.ObservationListResponse{
			DailyCounts: map[string]int{},
			Entries:     []model.Observation{},
		},
	}
	h := NewObservationHandler(mock)

	r := gin.New()
	r.GET("/api/observations", h.ListObservations)
	w := doRequest(r, "GET", "/api/observations?childId=7&month=2024-03&domain=신체&tags=놀이,%20친구&search=블록&limit=10&offset=20", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	q := mock.lastQuery
	if q.ChildID != 7 || q.Month != "2024-03" || q.Domain != "신체" || q.Search != "블록" || q.Limit != 10 || q.Offset != 20 {
		t.Errorf("query 参数未正确传递: %+v", q)
	}
	if len(q.Tags) != 2 || q.Tags[0] != "놀이" || q.Tags[1] != "친구" {
		t.Errorf("tags 应按逗号拆分并去空格: %+v", q.Tags)
	}
}

func TestObservationHandler_List_MissingChildID(t *testing.T) {
	h := NewObservationHandler(&mockObservationService{})

	r := gin.New()
	r.GET("/api/observations", h.ListObservations)
	w := doRequest(r, "GET", "/api/observations?childId=0", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "MISSING_CHILD_ID" {
		t.Errorf("expected MISSING_CHILD_ID, got %s", body.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// DailyObservationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDailyObservationHandler_List_MissingDate(t *testing.T) {
	h := NewDailyObservationHandler(&mockDailyObservationService{})

	r := gin.New()
	r.GET("/api/daily-observations", h.ListDailyObservations)
	w := doRequest(r, "GET", "/api/daily-observations?classId=1", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "MISSING_DATE" {
		t.Errorf("expected MISSING_DATE, got %s", body.Code)
	}
}

func TestDailyObservationHandler_List_MissingClassID(t *testing.T) {
	h := NewDailyObservationHandler(&mockDailyObservationService{})

	r := gin.New()
	r.GET("/api/daily-observations", h.ListDailyObservations)
	w := doRequest(r, "GET", "/api/daily-observations?date=2024-03-04", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "MISSING_CLASS_ID" {
		t.Errorf("expected MISSING_CLASS_ID, got %s", body.Code)
	}
}

func TestDailyObservationHandler_Update_Success(t *testing.T) {
	h := NewDailyObservationHandler(&mockDailyObservationService{})

	r := gin.New()
	r.PUT("/api/daily-observations/:id", h.UpdateDailyObservation)
	w := doRequest(r, "PUT", "/api/daily-observations/5", jsonBody(map[string]string{
		"observation": "블록을 높이 쌓으며 놀이함",
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || !body["success"] {
		t.Errorf("expected success true, got %s", w.Body.String())
	}
}

// ═══════════════════════════════════════════════════════════
// GenerateHandler Tests
// ═══════════════════════════════════════════════════════════

func TestGenerateHandler_Evaluation_Success(t *testing.T) {
	mock := &mockGenerationService{
		evalResult: &dto.GenerateEvaluationResponse{Success: true, Evaluation: "놀이 중심 평가 내용"},
	}
	h := NewGenerateHandler(mock)

	r := gin.New()
	r.POST("/api/generate-evaluation", h.GenerateEvaluation)
	w := doRequest(r, "POST", "/api/generate-evaluation", jsonBody(map[string]string{
		"keywords": "블록놀이",
		"ageGroup": "3-5",
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var resp dto.GenerateEvaluationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !resp.Success || resp.Evaluation == "" {
		t.Errorf("expected generated evaluation, got %+v", resp)
	}
}

func TestGenerateHandler_Evaluation_ServiceError(t *testing.T) {
	mock := &mockGenerationService{
		evalErr: apperr.Internal("GENERATION_FAILED", "Failed to generate evaluation"),
	}
	h := NewGenerateHandler(mock)

	r := gin.New()
	r.POST("/api/generate-evaluation", h.GenerateEvaluation)
	w := doRequest(r, "POST", "/api/generate-evaluation", jsonBody(map[string]string{
		"keywords": "블록놀이",
	}))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if body := parseErrBody(t, w); body.Code != "GENERATION_FAILED" {
		t.Errorf("expected GENERATION_FAILED, got %s", body.Code)
	}
}
