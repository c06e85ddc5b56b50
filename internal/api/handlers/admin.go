package handlers

import (
	"net/http"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Reset handles GET /api/reset: drop and recreate both tables.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	metrics.ResetsTotal.Inc()
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "database reset complete"})
}
