package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"postboard/internal/apperr"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

func TestNormalizeError(t *testing.T) {
	storeDown := apperr.Wrap(errors.New("dial"), apperr.KindStoreUnavailable, "whatever")
	dup := apperr.New(apperr.KindDuplicateKey, "ignored")
	val := apperr.Validation("Please add a name", "Please add an email")
	invalid := apperr.New(apperr.KindInvalidToken, "")
	expired := apperr.New(apperr.KindExpiredToken, "")

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   any
	}{
		{"store unavailable", storeDown, 500, msgDatabaseConnection},
		{"duplicate key", fmt.Errorf("register: %w", dup), 400, msgEmailInUse},
		{"validation keeps field order", val, 400, []string{"Please add a name", "Please add an email"}},
		{"invalid token", invalid, 401, msgInvalidToken},
		{"expired token", expired, 401, msgExpiredToken},
		{"not found", apperr.NotFound("Post", "p1"), 404, "Post not found with id of p1"},
		{"not owner", apperr.New(apperr.KindNotOwner, "User u1 is not authorized to update this post"), 401,
			"User u1 is not authorized to update this post"},
		{"carried status", &apperr.Error{Kind: apperr.KindBadRequest, Status: 418, Message: "teapot"}, 418, "teapot"},
		{"apperr without message", &apperr.Error{Kind: apperr.KindUnknown}, 500, msgServerError},
		{"plain error hides detail", errors.New("select posts: disk I/O"), 500, msgServerError},

		// precedence when one chain carries several conditions
		{"store beats duplicate", errors.Join(dup, storeDown), 500, msgDatabaseConnection},
		{"duplicate beats validation", errors.Join(val, dup), 400, msgEmailInUse},
		{"validation beats token", errors.Join(invalid, val), 400, []string{"Please add a name", "Please add an email"}},
		{"invalid beats expired", errors.Join(expired, invalid), 401, msgInvalidToken},
		{"expired beats not found", errors.Join(apperr.NotFound("Post", "x"), expired), 401, msgExpiredToken},
		{"empty validation falls through", apperr.Validation(), 400, msgServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := normalizeError(tc.err)
			if status != tc.wantStatus {
				t.Fatalf("status: got %d, want %d", status, tc.wantStatus)
			}
			if !reflect.DeepEqual(body, tc.wantBody) {
				t.Fatalf("body: got %#v, want %#v", body, tc.wantBody)
			}
		})
	}
}

func TestErrorMiddleware_RendersEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{}, nil, DefaultOptions())
	r := gin.New()
	r.Use(h.errorMiddleware, gin.CustomRecovery(h.recoverPanic))
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(apperr.Validation("Please provide content for the post"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	cases := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/validation", 400, `{"success":false,"error":["Please provide content for the post"]}`},
		{"/panic", 500, `{"success":false,"error":"Server Error"}`},
		{"/ok", 200, `{"success":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantStatus, w.Body.String())
			}
			assertJSONEqual(t, w.Body.Bytes(), tc.wantBody)
		})
	}
}

func TestRouteNotFound(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
	assertJSONEqual(t, w.Body.Bytes(), `{"success":false,"error":"Route not found"}`)
}

func assertJSONEqual(t *testing.T, got []byte, want string) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("unmarshal response %q: %v", got, err)
	}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("unmarshal expectation %q: %v", want, err)
	}
	if !reflect.DeepEqual(g, w) {
		t.Fatalf("body mismatch:\n got  %s\n want %s", got, want)
	}
}
