package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/williampettit/scholarsphere-sub001/internal/dto"
	"github.com/williampettit/scholarsphere-sub001/internal/service"
	"github.com/williampettit/scholarsphere-sub001/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock Services ──

type mockAuthService struct {
	registerResult   *dto.UserResponse
	registerErr      error
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	getCurrentResult *dto.UserResponse
	getCurrentErr    error
	changePassErr    error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

type mockSemesterService struct {
	createResult *dto.SemesterResponse
	createErr    error
	getResult    *dto.SemesterResponse
	getErr       error
	listResult   []dto.SemesterResponse
	listErr      error
	updateResult *dto.SemesterResponse
	updateErr    error
	deleteErr    error
}

func (m *mockSemesterService) Create(_ context.Context, _ string, _ *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockSemesterService) GetByID(_ context.Context, _, _ string) (*dto.SemesterResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockSemesterService) List(_ context.Context, _ string) ([]dto.SemesterResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockSemesterService) Update(_ context.Context, _, _ string, _ *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockSemesterService) Delete(_ context.Context, _, _ string) error {
	return m.deleteErr
}

type mockDashboardService struct {
	summaryResult  *dto.DashboardSummaryResponse
	summaryErr     error
	gpaResult      *dto.GPASummaryResponse
	gpaErr         error
	creditsResult  *dto.CreditSummaryResponse
	creditsErr     error
	upcomingResult *dto.UpcomingAssignmentsResponse
	upcomingErr    error
	activeResult   *dto.ActiveCoursesResponse
	activeErr      error
}

func (m *mockDashboardService) Summary(_ context.Context, _ string) (*dto.DashboardSummaryResponse, error) {
	return m.summaryResult, m.summaryErr
}
func (m *mockDashboardService) GPASummary(_ context.Context, _ string) (*dto.GPASummaryResponse, error) {
	return m.gpaResult, m.gpaErr
}
func (m *mockDashboardService) CreditSummary(_ context.Context, _ string) (*dto.CreditSummaryResponse, error) {
	return m.creditsResult, m.creditsErr
}
func (m *mockDashboardService) UpcomingAssignments(_ context.Context, _ string) (*dto.UpcomingAssignmentsResponse, error) {
	return m.upcomingResult, m.upcomingErr
}
func (m *mockDashboardService) ActiveCourses(_ context.Context, _ string) (*dto.ActiveCoursesResponse, error) {
	return m.activeResult, m.activeErr
}

// ── 测试辅助 ──

// performRequest 构造带认证上下文的请求并执行
func performRequest(h gin.HandlerFunc, method, path string, body interface{}, params ...gin.Param) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set("user_id", "user-001")
	c.Set("jti", "test-jti")
	c.Set("token_exp", time.Now().Add(time.Hour))

	h(c)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应体解析失败: %v", err)
	}
	return &resp
}

// ── AuthHandler 测试 ──

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
		},
	})

	w := performRequest(h.Login, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	if w.Code != http.StatusOK {
		t.Errorf("期望状态码 200，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("期望业务码 0，实际=%d", resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := performRequest(h.Login, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望状态码 401，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 11001 {
		t.Errorf("期望业务码 11001，实际=%d", resp.Code)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{registerErr: service.ErrEmailTaken})

	w := performRequest(h.Register, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     "测试用户",
		Email:    "test@example.com",
		Password: "password123",
	})

	if w.Code != http.StatusConflict {
		t.Errorf("期望状态码 409，实际=%d", w.Code)
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	// 缺少必填字段
	w := performRequest(h.Login, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "not-an-email"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望状态码 400，实际=%d", w.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := performRequest(h.Logout, http.MethodPost, "/api/v1/auth/logout", nil)

	if w.Code != http.StatusOK {
		t.Errorf("期望状态码 200，实际=%d", w.Code)
	}
}

// ── SemesterHandler 测试 ──

func TestSemesterHandler_GetSemester_NotFound(t *testing.T) {
	h := NewSemesterHandler(&mockSemesterService{getErr: service.ErrSemesterNotFound})

	w := performRequest(h.GetSemester, http.MethodGet, "/api/v1/semesters/sem-404", nil,
		gin.Param{Key: "id", Value: "sem-404"})

	if w.Code != http.StatusNotFound {
		t.Errorf("期望状态码 404，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 12001 {
		t.Errorf("期望业务码 12001，实际=%d", resp.Code)
	}
}

func TestSemesterHandler_CreateSemester_DateInvalid(t *testing.T) {
	h := NewSemesterHandler(&mockSemesterService{createErr: service.ErrSemesterDateInvalid})

	w := performRequest(h.CreateSemester, http.MethodPost, "/api/v1/semesters", dto.CreateSemesterRequest{
		Name:      "测试学期",
		StartDate: "2026-12-15",
		EndDate:   "2026-08-20",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望状态码 400，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 12002 {
		t.Errorf("期望业务码 12002，实际=%d", resp.Code)
	}
}

func TestSemesterHandler_CreateSemester_Success(t *testing.T) {
	h := NewSemesterHandler(&mockSemesterService{
		createResult: &dto.SemesterResponse{ID: "sem-001", Name: "测试学期"},
	})

	w := performRequest(h.CreateSemester, http.MethodPost, "/api/v1/semesters", dto.CreateSemesterRequest{
		Name:      "测试学期",
		StartDate: "2026-08-20",
		EndDate:   "2026-12-15",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("期望状态码 201，实际=%d", w.Code)
	}
}

// ── DashboardHandler 测试 ──

func TestDashboardHandler_GetGPA_Success(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{
		gpaResult: &dto.GPASummaryResponse{CompletedGPA: 3.43, TenativeGPA: 3.6},
	})

	w := performRequest(h.GetGPA, http.MethodGet, "/api/v1/dashboard/gpa", nil)

	if w.Code != http.StatusOK {
		t.Errorf("期望状态码 200，实际=%d", w.Code)
	}
	// 线上契约字段拼写固定为 tenative_gpa
	if !bytes.Contains(w.Body.Bytes(), []byte(`"tenative_gpa":3.6`)) {
		t.Errorf("响应缺少 tenative_gpa 字段: %s", w.Body.String())
	}
}

func TestDashboardHandler_GetSummary_MissingUser(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{})

	// 不注入 user_id，模拟中间件缺失
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)

	h.GetSummary(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望状态码 401，实际=%d", w.Code)
	}
}
