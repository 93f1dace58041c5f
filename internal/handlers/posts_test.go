package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"postboard/internal/apperr"
	"postboard/internal/models"
	"postboard/internal/service"
)

func postsRouter(posts *mockPosts) http.Handler {
	return newTestRouter(&service.Service{
		Authorization: &mockAuth{parseIDs: map[string]string{"valid": "u1"}},
		Posts:         posts,
	})
}

func TestPostHandlers_List(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := &mockPosts{listResp: []models.Post{
		{ID: "p2", Content: "newer", Author: models.AuthorRef{ID: "u2", Name: "Bob"}, CreatedAt: t0.Add(time.Minute)},
		{ID: "p1", Content: "older", Author: models.AuthorRef{ID: "u1", Name: "Alice"}, CreatedAt: t0},
	}}
	r := postsRouter(posts)

	w := doRequest(r, http.MethodGet, "/api/v1/posts", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool          `json:"success"`
		Count   int           `json:"count"`
		Data    []models.Post `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Count != 2 || len(resp.Data) != 2 {
		t.Fatalf("unexpected list: %+v", resp)
	}
	if resp.Data[0].ID != "p2" || resp.Data[0].Author.Name != "Bob" {
		t.Fatalf("order or author lost: %+v", resp.Data)
	}
}

func TestPostHandlers_ListEmptyAndStoreDown(t *testing.T) {
	r := postsRouter(&mockPosts{listResp: []models.Post{}})
	w := doRequest(r, http.MethodGet, "/api/v1/posts", "", nil)
	assertJSONEqual(t, w.Body.Bytes(), `{"success":true,"count":0,"data":[]}`)

	r = postsRouter(&mockPosts{listErr: apperr.New(apperr.KindStoreUnavailable, "down")})
	w = doRequest(r, http.MethodGet, "/api/v1/posts", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	assertJSONEqual(t, w.Body.Bytes(), `{"success":false,"error":"Database connection error. Please try again later."}`)
}

func TestPostHandlers_CreateUsesCaller(t *testing.T) {
	posts := &mockPosts{createResp: &models.Post{
		ID: "p1", Content: "hello", Author: models.AuthorRef{ID: "u1", Name: "Alice"},
	}}
	r := postsRouter(posts)

	w := doRequest(r, http.MethodPost, "/api/v1/posts",
		`{"content":"hello","author":{"id":"u2"}}`, authHeader("valid"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if posts.lastCaller != "u1" {
		t.Fatalf("caller: got %q, want u1", posts.lastCaller)
	}
	if posts.lastInput.Content == nil || *posts.lastInput.Content != "hello" {
		t.Fatalf("content not forwarded: %+v", posts.lastInput)
	}
	var resp struct {
		Success bool        `json:"success"`
		Data    models.Post `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || resp.Data.Author.ID != "u1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPostHandlers_CreateErrors(t *testing.T) {
	cases := []struct {
		name       string
		header     http.Header
		body       string
		createErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no token",
			body:       `{"content":"hello"}`,
			wantStatus: 401,
			wantBody:   `{"success":false,"error":"Not authorized to access this route"}`,
		},
		{
			name:       "empty content",
			header:     authHeader("valid"),
			body:       `{"content":""}`,
			createErr:  apperr.Validation("Please provide content for the post"),
			wantStatus: 400,
			wantBody:   `{"success":false,"error":["Please provide content for the post"]}`,
		},
		{
			name:       "malformed json",
			header:     authHeader("valid"),
			body:       `{"content":`,
			wantStatus: 400,
			wantBody:   `{"success":false,"error":"Invalid request body"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			posts := &mockPosts{createErr: tc.createErr}
			r := postsRouter(posts)
			w := doRequest(r, http.MethodPost, "/api/v1/posts", tc.body, tc.header)
			if w.Code != tc.wantStatus {
				t.Fatalf("status=%d want %d, body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
			assertJSONEqual(t, w.Body.Bytes(), tc.wantBody)
		})
	}
}

func TestPostHandlers_Get(t *testing.T) {
	posts := &mockPosts{getResp: &models.Post{ID: "p1", Content: "hi", Author: models.AuthorRef{ID: "u1", Name: "Alice"}}}
	r := postsRouter(posts)

	w := doRequest(r, http.MethodGet, "/api/v1/posts/p1", "", nil)
	if w.Code != http.StatusOK || posts.lastID != "p1" {
		t.Fatalf("status=%d id=%q body=%s", w.Code, posts.lastID, w.Body.String())
	}

	posts.getErr = apperr.NotFound("Post", "missing")
	w = doRequest(r, http.MethodGet, "/api/v1/posts/missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	assertJSONEqual(t, w.Body.Bytes(), `{"success":false,"error":"Post not found with id of missing"}`)
}

func TestPostHandlers_Update(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		posts := &mockPosts{updateResp: &models.Post{ID: "p1", Content: "v2", Author: models.AuthorRef{ID: "u1", Name: "Alice"}}}
		r := postsRouter(posts)
		w := doRequest(r, http.MethodPut, "/api/v1/posts/p1", `{"content":"v2"}`, authHeader("valid"))
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if posts.lastCaller != "u1" || posts.lastID != "p1" || *posts.lastInput.Content != "v2" {
			t.Fatalf("unexpected args: caller=%q id=%q in=%+v", posts.lastCaller, posts.lastID, posts.lastInput)
		}
	})

	t.Run("empty body keeps content", func(t *testing.T) {
		posts := &mockPosts{updateResp: &models.Post{ID: "p1"}}
		r := postsRouter(posts)
		w := doRequest(r, http.MethodPut, "/api/v1/posts/p1", "", authHeader("valid"))
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if posts.lastInput.Content != nil {
			t.Fatalf("expected no content change, got %q", *posts.lastInput.Content)
		}
	})

	t.Run("non-owner", func(t *testing.T) {
		posts := &mockPosts{updateErr: apperr.New(apperr.KindNotOwner, "User u1 is not authorized to update this post")}
		r := postsRouter(posts)
		w := doRequest(r, http.MethodPut, "/api/v1/posts/p9", `{"content":"x"}`, authHeader("valid"))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		assertJSONEqual(t, w.Body.Bytes(), `{"success":false,"error":"User u1 is not authorized to update this post"}`)
	})

	t.Run("expired token", func(t *testing.T) {
		posts := &mockPosts{}
		r := newTestRouter(&service.Service{
			Authorization: &mockAuth{parseErr: apperr.New(apperr.KindExpiredToken, "")},
			Posts:         posts,
		})
		w := doRequest(r, http.MethodPut, "/api/v1/posts/p1", `{"content":"x"}`, authHeader("old"))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d", w.Code)
		}
		assertJSONEqual(t, w.Body.Bytes(), `{"success":false,"error":"Token expired. Please log in again."}`)
		if posts.lastID != "" {
			t.Fatalf("service reached with an expired token")
		}
	})
}

func TestPostHandlers_Delete(t *testing.T) {
	posts := &mockPosts{}
	r := postsRouter(posts)

	w := doRequest(r, http.MethodDelete, "/api/v1/posts/p1", "", authHeader("valid"))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	assertJSONEqual(t, w.Body.Bytes(), `{"success":true,"data":{}}`)
	if posts.lastCaller != "u1" || posts.lastID != "p1" {
		t.Fatalf("unexpected args: %q %q", posts.lastCaller, posts.lastID)
	}

	posts.deleteErr = apperr.New(apperr.KindNotOwner, "User u1 is not authorized to delete this post")
	w = doRequest(r, http.MethodDelete, "/api/v1/posts/p2", "", authHeader("valid"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", w.Code)
	}
	assertJSONEqual(t, w.Body.Bytes(), `{"success":false,"error":"User u1 is not authorized to delete this post"}`)
}
