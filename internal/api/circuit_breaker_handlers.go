package api

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
)

// getCircuitBreakersHandler returns the state of every breaker, by name
// @Summary State of every circuit breaker
// @Tags admin
// @Produce json
// @Success 200 {object} ApiResponse
// @Router /admin/breakers [get]
func (s *Server) getCircuitBreakersHandler(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.breakers))

	for name := range s.breakers {
		names = append(names, name)
	}
	sort.Strings(names)

	snapshots := make([]map[string]interface{}, 0, len(names))

	for _, name := range names {
		snapshots = append(snapshots, s.breakers[name].Snapshot())
	}

	s.respondWithData(w, http.StatusOK, snapshots)
}

// resetCircuitBreakerHandler forces a breaker back to closed
// @Summary Force a circuit breaker closed
// @Tags admin
// @Produce json
// @Param name path string true "Breaker name"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "Circuit breaker not found"
// @Router /admin/breakers/{name}/reset [post]
func (s *Server) resetCircuitBreakerHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	b, ok := s.breakers[name]

	if !ok {
		s.respondWithError(w, http.StatusNotFound, "Circuit breaker not found")
		return
	}

	b.Reset()
	s.logger.Info("Circuit breaker reset", "name", name)

	s.respondWithData(w, http.StatusOK, map[string]string{
		"message": "Circuit breaker reset successfully",
		"name":    name,
	})
}
