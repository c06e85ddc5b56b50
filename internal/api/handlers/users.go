package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /api/users. Posting an already-taken username returns
// the existing user unchanged.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r, "username")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.CreateOrGet(r.Context(), body["username"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	metrics.UsersCreated.Inc()
	httpx.WriteJSON(w, http.StatusOK, u)
}

// List handles GET /api/users, username ascending.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch classify(err) {
	case http.StatusBadRequest:
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case http.StatusNotFound:
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
	}
}
