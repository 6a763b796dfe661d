package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/gameref/connectz/game/report"
	"github.com/gameref/connectz/game/service"
	"github.com/gameref/connectz/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.RefereeService
	hub     *websocket.Hub
	router  *mux.Router
	log     zerolog.Logger
}

// NewServer creates a new API server
func NewServer(refereeService service.RefereeService, hub *websocket.Hub, logger zerolog.Logger) *Server {
	s := &Server{
		service: refereeService,
		hub:     hub,
		router:  mux.NewRouter(),
		log:     logger,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Report management
	api.HandleFunc("/reports", s.handleSubmit).Methods("POST")
	api.HandleFunc("/reports", s.handleListReports).Methods("GET")
	api.HandleFunc("/reports/{id}", s.handleGetReport).Methods("GET")
	api.HandleFunc("/reports/{id}", s.handleDeleteReport).Methods("DELETE")

	// Discovery
	api.HandleFunc("/rules", s.handleRules).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Report Handlers

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name,omitempty"`
		Log  string `json:"log"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rep, err := s.service.Submit(r.Context(), req.Name, req.Log)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Broadcast to WebSocket clients
	if s.hub != nil {
		s.hub.BroadcastReport(rep)
	}

	s.log.Info().
		Str("report_id", rep.ID).
		Int("code", rep.Verdict.Code).
		Msg("submission accepted")

	respondJSON(w, http.StatusCreated, rep)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.service.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Apply limit if specified
	limit := len(reports)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(reports) {
			limit = l
		}
	}
	reports = reports[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(reports),
		"reports": reports,
	})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportID := vars["id"]

	rep, err := s.service.Get(r.Context(), reportID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportID := vars["id"]

	if err := s.service.Delete(r.Context(), reportID); err != nil {
		status := http.StatusInternalServerError
		if err == report.ErrReportNotFound {
			status = http.StatusNotFound
		}
		respondError(w, status, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Report %s deleted", reportID),
	})
}

// Discovery Handlers

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.service.Rules(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWS(w, r)
}
