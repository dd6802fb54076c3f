package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"welboard/internal/engage"
	"welboard/internal/lunch"
	"welboard/internal/welstory"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	store, err := engage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	// Unauthenticated client pointing nowhere: menu requests degrade to
	// the unauthenticated status without touching the network.
	client := welstory.New("http://unused.invalid", "REST000001")
	svc := lunch.NewService(client, store, nil)

	return NewServer(svc, store)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMenuEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/menu?date=20260901", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var m lunch.Menu
	if err := json.NewDecoder(rec.Body).Decode(&m); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if m.Status != lunch.StatusUnauthenticated {
		t.Errorf("menu status = %q, want %q", m.Status, lunch.StatusUnauthenticated)
	}
	if m.Date != "20260901" {
		t.Errorf("date = %q, want 20260901", m.Date)
	}
}

func TestMenuEndpointRejectsBadDate(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/menu?date=2026-09-01", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestVoteEndpoints(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/menu/20260901_한식_비빔밥/like", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var count engage.VoteCount
	if err := json.NewDecoder(rec.Body).Decode(&count); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if count.Likes != 1 || count.Dislikes != 0 {
		t.Errorf("votes = %+v, want {1 0}", count)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/menu/20260901_한식_비빔밥/dislike", "")
	if err := json.NewDecoder(rec.Body).Decode(&count); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if count.Likes != 1 || count.Dislikes != 1 {
		t.Errorf("votes = %+v, want {1 1}", count)
	}

	// GET on a vote route is not allowed.
	rec = doJSON(t, s, http.MethodGet, "/api/menu/20260901_한식_비빔밥/like", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestCommentEndpoints(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/menu/item-1/comments", `{"author": "수진", "text": "맛있어요"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/menu/item-1/comments", `{"text": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/menu/item-1/comments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var comments []engage.Comment
	if err := json.NewDecoder(rec.Body).Decode(&comments); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "맛있어요" {
		t.Errorf("comments = %+v", comments)
	}

	// Listing an uncommented item returns an empty array, not null.
	rec = doJSON(t, s, http.MethodGet, "/api/menu/item-2/comments", "")
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty comments body = %q, want []", got)
	}
}

func TestBoardEndpoints(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/board", `{"title": "점심 모임", "author": "수진", "content": "12시"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var post engage.Post
	if err := json.NewDecoder(rec.Body).Decode(&post); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if post.ID != 0 {
		t.Errorf("first post ID = %d, want 0", post.ID)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/board", `{"title": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing title status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/board/0/comments", `{"author": "준호", "text": "참석"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("post comment status = %d, want 201", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/board/42/comments", `{"text": "?"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown post status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/board", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var posts []engage.Post
	if err := json.NewDecoder(rec.Body).Decode(&posts); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(posts) != 1 || len(posts[0].Comments) != 1 {
		t.Errorf("posts = %+v", posts)
	}
}
