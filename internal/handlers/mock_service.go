package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	parseIDs      map[string]string // token -> user id
	parseErr      error
	currentUser   *models.User
	currentErr    error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastLoginPass  string
	lastParseToken string
	lastCurrentID  string
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (string, error) {
	m.lastRegister = in
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return "", m.parseErr
	}
	return m.parseIDs[token], nil
}

func (m *mockAuth) CurrentUser(_ context.Context, userID string) (*models.User, error) {
	m.lastCurrentID = userID
	return m.currentUser, m.currentErr
}

type mockPosts struct {
	listResp   []models.Post
	listErr    error
	getResp    *models.Post
	getErr     error
	createResp *models.Post
	createErr  error
	updateResp *models.Post
	updateErr  error
	deleteErr  error

	lastCaller string
	lastID     string
	lastInput  service.PostInput
	listCalls  int
}

func (m *mockPosts) List(context.Context) ([]models.Post, error) {
	m.listCalls++
	return m.listResp, m.listErr
}

func (m *mockPosts) Get(_ context.Context, id string) (*models.Post, error) {
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *mockPosts) Create(_ context.Context, callerID string, in service.PostInput) (*models.Post, error) {
	m.lastCaller = callerID
	m.lastInput = in
	return m.createResp, m.createErr
}

func (m *mockPosts) Update(_ context.Context, callerID, id string, in service.PostInput) (*models.Post, error) {
	m.lastCaller = callerID
	m.lastID = id
	m.lastInput = in
	return m.updateResp, m.updateErr
}

func (m *mockPosts) Delete(_ context.Context, callerID, id string) error {
	m.lastCaller = callerID
	m.lastID = id
	return m.deleteErr
}

type mockUsers struct {
	resp   *models.ProfilePage
	err    error
	lastID string
}

func (m *mockUsers) Profile(_ context.Context, id string) (*models.ProfilePage, error) {
	m.lastID = id
	return m.resp, m.err
}

type mockHealth struct {
	err error
}

func (m *mockHealth) Check(context.Context) error { return m.err }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, DefaultOptions())
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doRequest sends a request through r. An empty body sends none.
func doRequest(r http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	for k, v := range header {
		req.Header[k] = v
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
