// Package http provides the JSON HTTP API over the chat controller.
// Framework/driver layer - nothing here contains routing or retrieval
// logic.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/usecases"
	"github.com/coursechat/coursechat-go/internal/log"
)

// Server exposes the controller over HTTP.
type Server struct {
	controller *usecases.Controller
	catalogs   usecases.CatalogProvider
	addr       string
}

// NewServer creates the HTTP server.
func NewServer(controller *usecases.Controller, catalogs usecases.CatalogProvider, addr string) *Server {
	if addr == "" {
		addr = ":8080"
	}
	return &Server{
		controller: controller,
		catalogs:   catalogs,
		addr:       addr,
	}
}

// Start runs the HTTP server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ask", s.handleAsk)
	mux.HandleFunc("/api/strategy", s.handleSetStrategy)
	mux.HandleFunc("/api/provider", s.handleSetProvider)
	mux.HandleFunc("/api/courses", s.handleCourses)
	mux.HandleFunc("/api/health", s.handleHealth)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Infof("http api listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer   string `json:"answer"`
	Route    string `json:"route"`
	Strategy string `json:"strategy"`
	Provider string `json:"provider"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		writeError(w, http.StatusBadRequest, "body must be {\"question\": \"...\"}")
		return
	}

	result, err := s.controller.Ask(r.Context(), req.Question)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, askResponse{
		Answer:   result.Answer,
		Route:    result.Route.String(),
		Strategy: result.Strategy,
		Provider: result.Provider,
	})
}

type setRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleSetStrategy(w http.ResponseWriter, r *http.Request) {
	s.handleSet(w, r, s.controller.SetStrategy, s.controller.ActiveStrategy)
}

func (s *Server) handleSetProvider(w http.ResponseWriter, r *http.Request) {
	s.handleSet(w, r, s.controller.SetProvider, s.controller.ActiveProvider)
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request, set func(string) error, active func() string) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]string{"active": active()})
	case http.MethodPut, http.MethodPost:
		var req setRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, "body must be {\"name\": \"...\"}")
			return
		}
		if err := set(req.Name); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"active": active()})
	default:
		writeError(w, http.StatusMethodNotAllowed, "GET or PUT required")
	}
}

type courseSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	catalog := s.catalogs.Catalog()
	out := make([]courseSummary, 0, catalog.Len())
	for _, course := range catalog.Courses() {
		out = append(out, courseSummary{ID: course.ID, Title: course.Title})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"courses": s.catalogs.Catalog().Len(),
	})
}

// statusFor maps the core error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrUnknownVariant),
		errors.Is(err, entities.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrProviderUnavailable),
		errors.Is(err, entities.ErrProviderError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
