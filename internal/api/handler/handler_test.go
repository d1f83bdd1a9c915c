package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.LoginResponse
	loginErr      error
	sessionActive bool
	sessionErr    error
	logoutCalled  bool
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context) {
	m.logoutCalled = true
}
func (m *mockAuthService) SessionActive(_ context.Context) (bool, error) {
	return m.sessionActive, m.sessionErr
}

// ── Mock TeacherService ──

type mockTeacherService struct {
	listResult   []model.Teacher
	listErr      error
	getResult    *model.Teacher
	getErr       error
	createResult *model.Teacher
	createErr    error
	updateResult *model.Teacher
	updateErr    error
	deleteErr    error
}

func (m *mockTeacherService) List(_ context.Context, _ *dto.ListQuery) ([]model.Teacher, error) {
	return m.listResult, m.listErr
}
func (m *mockTeacherService) GetByID(_ context.Context, _ int) (*model.Teacher, error) {
	return m.getResult, m.getErr
}
func (m *mockTeacherService) Create(_ context.Context, _ *dto.CreateTeacherRequest) (*model.Teacher, error) {
	return m.createResult, m.createErr
}
func (m *mockTeacherService) Update(_ context.Context, _ int, _ *dto.UpdateTeacherRequest) (*model.Teacher, error) {
	return m.updateResult, m.updateErr
}
func (m *mockTeacherService) Delete(_ context.Context, _ int) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) Export(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析回應失敗: %v (body=%s)", err, w.Body.String())
	}
	return resp
}

// ── 認證 ──

func TestAuthHandlerLoginSuccess(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{Token: "signed-token", ExpiresIn: 86400},
	}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/login", h.Login)

	w := performRequest(r, http.MethodPost, "/login", `{"username":"admin","password":"lab2024"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("狀態碼應為 200，實際為 %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("業務碼應為 0，實際為 %d", resp.Code)
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/login", h.Login)

	w := performRequest(r, http.MethodPost, "/login", `{"username":"admin","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("帳密錯誤狀態碼應為 401，實際為 %d", w.Code)
	}
}

func TestAuthHandlerLoginBadBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/login", h.Login)

	w := performRequest(r, http.MethodPost, "/login", `{"username":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("缺少必填欄位狀態碼應為 400，實際為 %d", w.Code)
	}
}

func TestAuthHandlerLogoutAlwaysOK(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/logout", h.Logout)

	w := performRequest(r, http.MethodPost, "/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("登出狀態碼應為 200，實際為 %d", w.Code)
	}
	if !mock.logoutCalled {
		t.Error("登出應呼叫 Service")
	}
}

func TestAuthHandlerSession(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{sessionActive: true})

	r := gin.New()
	r.GET("/session", h.Session)

	w := performRequest(r, http.MethodGet, "/session", "")
	if w.Code != http.StatusOK {
		t.Fatalf("狀態碼應為 200，實際為 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"active":true`) {
		t.Errorf("回應應帶 active=true: %s", w.Body.String())
	}
}

// ── 師資 CRUD ──

func TestTeacherHandlerGetNotFound(t *testing.T) {
	h := NewTeacherHandler(&mockTeacherService{getErr: service.ErrTeacherNotFound})

	r := gin.New()
	r.GET("/teachers/:id", h.GetTeacher)

	w := performRequest(r, http.MethodGet, "/teachers/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("不存在的教師狀態碼應為 404，實際為 %d", w.Code)
	}
}

func TestTeacherHandlerGetBadID(t *testing.T) {
	h := NewTeacherHandler(&mockTeacherService{})

	r := gin.New()
	r.GET("/teachers/:id", h.GetTeacher)

	for _, id := range []string{"abc", "0", "-3"} {
		w := performRequest(r, http.MethodGet, "/teachers/"+id, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("非法 id %q 狀態碼應為 400，實際為 %d", id, w.Code)
		}
	}
}

func TestTeacherHandlerCreate(t *testing.T) {
	created := &model.Teacher{Name: "陳建宏", Title: "教授"}
	created.ID = 1
	h := NewTeacherHandler(&mockTeacherService{createResult: created})

	r := gin.New()
	r.POST("/teachers", h.CreateTeacher)

	w := performRequest(r, http.MethodPost, "/teachers", `{"name":"陳建宏","title":"教授"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("新增狀態碼應為 201，實際為 %d", w.Code)
	}
}

func TestTeacherHandlerInternalError(t *testing.T) {
	h := NewTeacherHandler(&mockTeacherService{listErr: errors.New("db down")})

	r := gin.New()
	r.GET("/teachers", h.ListTeachers)

	w := performRequest(r, http.MethodGet, "/teachers", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("非業務錯誤狀態碼應為 500，實際為 %d", w.Code)
	}
}

// ── 匯出 ──

func TestExportHandlerHeaders(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "publications_20250601.xlsx",
	})

	r := gin.New()
	r.GET("/export/:entity", h.Export)

	w := performRequest(r, http.MethodGet, "/export/publications", "")
	if w.Code != http.StatusOK {
		t.Fatalf("匯出狀態碼應為 200，實際為 %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type 應為 xlsx，實際為 %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "publications_20250601.xlsx") {
		t.Errorf("Content-Disposition 應帶檔名: %q", cd)
	}
}

func TestExportHandlerUnknownEntity(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportUnknownEntity})

	r := gin.New()
	r.GET("/export/:entity", h.Export)

	w := performRequest(r, http.MethodGet, "/export/nonsense", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("不支援的項目狀態碼應為 400，實際為 %d", w.Code)
	}
}
