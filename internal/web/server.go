// Package web provides the JSON API server over the aggregated menu and
// the engagement store. Rendering is left to whatever front end consumes
// the API.
package web

import (
	"fmt"
	"net/http"

	"welboard/internal/engage"
	"welboard/internal/logging"
	"welboard/internal/lunch"
)

// Server is the welboard HTTP API server.
type Server struct {
	svc     *lunch.Service
	store   *engage.Store
	handler http.Handler
}

// NewServer wires the API routes behind the request-logging middleware.
func NewServer(svc *lunch.Service, store *engage.Store) *Server {
	s := &Server{
		svc:   svc,
		store: store,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/menu", s.handleMenu)
	mux.HandleFunc("/api/menu/", s.handleMenuItemRoute)
	mux.HandleFunc("/api/board", s.handleBoard)
	mux.HandleFunc("/api/board/", s.handleBoardRoute)
	s.handler = logging.Requests(mux)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("welboard API listening on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s)
}
