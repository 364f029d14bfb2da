package server

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.WithError(err).Error("database ping failed")
		s.renderError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	s.renderJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
