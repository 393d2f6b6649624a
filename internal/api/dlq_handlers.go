package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// deadLetterID parses the {id} path variable. On failure it answers 400.
func (s *Server) deadLetterID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err != nil || id <= 0 {
		s.respondWithError(w, http.StatusBadRequest, "Invalid message ID")
		return 0, false
	}

	return id, true
}

// getDeadLettersHandler lists dead letters, filtered by ?status and
// bounded by ?limit
// @Summary List dead-lettered outbox messages
// @Tags admin
// @Produce json
// @Param status query string false "Dead letter status" Enums(pending, requeued, discarded)
// @Param limit query integer false "Page size, 1 to 500"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "dead letter status invalid"
// @Router /admin/dead-letters [get]
func (s *Server) getDeadLettersHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := s.svc.DeadLetters.List(r.Context(), r.URL.Query().Get("status"), limit)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, messages)
}

// getDeadLetterHandler godoc
// @Summary Dead letter by ID
// @Tags admin
// @Produce json
// @Param id path integer true "Dead letter ID"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "Invalid message ID"
// @Failure 404 {object} ApiResponse "resource not found"
// @Router /admin/dead-letters/{id} [get]
func (s *Server) getDeadLetterHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.deadLetterID(w, r)

	if !ok {
		return
	}

	msg, err := s.svc.DeadLetters.Get(r.Context(), id)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, msg)
}

// retryDeadLetterHandler puts a pending dead letter back on the outbox
// @Summary Requeue a dead letter on the outbox
// @Tags admin
// @Produce json
// @Param id path integer true "Dead letter ID"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "Invalid message ID"
// @Failure 404 {object} ApiResponse "resource not found"
// @Router /admin/dead-letters/{id}/retry [post]
func (s *Server) retryDeadLetterHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.deadLetterID(w, r)

	if !ok {
		return
	}

	msg, err := s.svc.DeadLetters.Retry(r.Context(), id)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, map[string]interface{}{
		"message":         "Dead letter message requeued",
		"id":              id,
		"outboxMessageId": msg.ID,
	})
}

// discardDeadLetterHandler resolves a pending dead letter without delivery
// @Summary Resolve a dead letter without delivery
// @Tags admin
// @Produce json
// @Param id path integer true "Dead letter ID"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "Invalid message ID"
// @Failure 404 {object} ApiResponse "resource not found"
// @Router /admin/dead-letters/{id}/discard [post]
func (s *Server) discardDeadLetterHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.deadLetterID(w, r)

	if !ok {
		return
	}

	if err := s.svc.DeadLetters.Discard(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, map[string]interface{}{
		"message": "Dead letter message discarded",
		"id":      id,
	})
}
