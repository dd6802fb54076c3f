package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"welboard/internal/engage"
)

// defaultMealSlot is the lunch slot code.
const defaultMealSlot = "2"

// kst is the service timezone; menu dates are interpreted in it.
var kst = time.FixedZone("KST", 9*60*60)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleHealth serves liveness probes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleMenu serves GET /api/menu?date=YYYYMMDD&slot=N.
// Date defaults to today in KST, slot to lunch.
func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date := time.Now().In(kst)
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.ParseInLocation("20060102", d, kst)
		if err != nil {
			apiError(w, "invalid date, want YYYYMMDD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	slot := r.URL.Query().Get("slot")
	if slot == "" {
		slot = defaultMealSlot
	}

	m, err := s.svc.Menu(r.Context(), date, slot)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, m, http.StatusOK)
}

// handleMenuItemRoute routes /api/menu/{id}/like, /dislike, and /comments.
func (s *Server) handleMenuItemRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/menu/")

	if strings.HasSuffix(path, "/like") {
		s.handleVote(w, r, strings.TrimSuffix(path, "/like"), s.store.Like)
		return
	}
	if strings.HasSuffix(path, "/dislike") {
		s.handleVote(w, r, strings.TrimSuffix(path, "/dislike"), s.store.Dislike)
		return
	}
	if strings.HasSuffix(path, "/comments") {
		id := strings.TrimSuffix(path, "/comments")
		switch r.Method {
		case http.MethodGet:
			s.listComments(w, id)
		case http.MethodPost:
			s.addComment(w, r, id)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	apiError(w, "not found", http.StatusNotFound)
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request, id string, vote func(string) (engage.VoteCount, error)) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if id == "" {
		apiError(w, "missing menu item ID", http.StatusBadRequest)
		return
	}

	count, err := vote(id)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, count, http.StatusOK)
}

func (s *Server) listComments(w http.ResponseWriter, id string) {
	comments, err := s.store.CommentsFor(id)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if comments == nil {
		comments = []engage.Comment{}
	}
	apiJSON(w, comments, http.StatusOK)
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		apiError(w, "comment text is required", http.StatusBadRequest)
		return
	}

	if err := s.store.AddComment(id, req.Author, req.Text); err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "created"}, http.StatusCreated)
}

// handleBoard serves GET (list) and POST (create) on /api/board.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		posts, err := s.store.Posts()
		if err != nil {
			apiError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if posts == nil {
			posts = []engage.Post{}
		}
		apiJSON(w, posts, http.StatusOK)
	case http.MethodPost:
		var req struct {
			Title   string `json:"title"`
			Author  string `json:"author"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Title == "" {
			apiError(w, "post title is required", http.StatusBadRequest)
			return
		}
		post, err := s.store.CreatePost(req.Title, req.Author, req.Content)
		if err != nil {
			apiError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		apiJSON(w, post, http.StatusCreated)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleBoardRoute routes /api/board/{id}/comments.
func (s *Server) handleBoardRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/board/")

	if !strings.HasSuffix(path, "/comments") {
		apiError(w, "not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimSuffix(path, "/comments")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		apiError(w, "comment text is required", http.StatusBadRequest)
		return
	}

	if err := s.store.AddPostComment(id, req.Author, req.Text); err != nil {
		if errors.Is(err, engage.ErrPostNotFound) {
			apiError(w, err.Error(), http.StatusNotFound)
			return
		}
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "created"}, http.StatusCreated)
}
