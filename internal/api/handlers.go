package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vaidashi/fastfood-api/internal/service"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

type ApiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Health represents the health check response
type Health struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// healthCheckHandler handles the health check endpoint
// @Summary Service and database health
// @Tags health
// @Produce json
// @Success 200 {object} ApiResponse
// @Failure 503 {object} ApiResponse "Database unreachable"
// @Router /health [get]
func (s *Server) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	health := Health{
		Status:    "ok",
		Version:   Version,
		Database:  "unchecked",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	code := http.StatusOK

	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.Ping(ctx); err != nil {
			s.logger.Warn("Health check database ping failed", "error", err)
			health.Status = "degraded"
			health.Database = "down"
			code = http.StatusServiceUnavailable
		} else {
			health.Database = "up"
		}
	}

	s.respondWithJSON(w, code, ApiResponse{
		Success: code == http.StatusOK,
		Data:    health,
	})
}

// decode reads the request body into dst. On failure it answers 400 and
// returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}

	return true
}

// respondWithData sends a successful response carrying data
func (s *Server) respondWithData(w http.ResponseWriter, code int, data interface{}) {
	s.respondWithJSON(w, code, ApiResponse{Success: true, Data: data})
}

// respondWithServiceError maps err onto a status and sends it. Server
// errors are logged and their details kept out of the response.
func (s *Server) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := service.HTTPStatus(err)
	message := err.Error()

	if code >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)

		if code == http.StatusInternalServerError {
			message = rootMessage(err)
		}
	}

	s.respondWithError(w, code, message)
}

// rootMessage returns the outermost sentinel message of a wrapped
// persistence error, e.g. "failure insert"
func rootMessage(err error) string {
	for _, sentinel := range []error{service.ErrFailureInsert, service.ErrFailureUpdate, service.ErrFailureRemove} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// respondWithError sends a JSON response with an error message
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, ApiResponse{
		Success: false,
		Error:   message,
	})
}

// respondWithJSON sends a JSON response
func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)

	if err != nil {
		s.logger.Error("Failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
