package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

type ExerciseHandler struct {
	svc *services.ExerciseService
}

func NewExerciseHandler(svc *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{svc: svc}
}

type exerciseResp struct {
	ID          string `json:"id"` // the user's id, not the exercise row id
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResp struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []logEntry `json:"log"`
}

// Add handles POST /api/users/{id}/exercises.
func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	body, err := parseBody(r, "description", "duration", "date")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, u, err := h.svc.Add(r.Context(), userID, services.AddExerciseInput{
		Description: body["description"],
		Duration:    body["duration"],
		Date:        body["date"],
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	metrics.ExercisesCreated.Inc()
	httpx.WriteJSON(w, http.StatusOK, exerciseResp{
		ID:          u.ID,
		Username:    u.Username,
		Date:        e.Date.Format(models.DateLayout),
		Duration:    e.Duration,
		Description: e.Description,
	})
}

// Logs handles GET /api/users/{id}/logs?from=&to=&limit=. Unparseable filter
// values are ignored.
func (h *ExerciseHandler) Logs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	f := logFilterFromQuery(r)

	u, list, err := h.svc.Logs(r.Context(), userID, f)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	entries := make([]logEntry, 0, len(list))
	for _, e := range list {
		entries = append(entries, logEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Format(models.DateLayout),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, logResp{
		ID:       u.ID,
		Username: u.Username,
		Count:    len(entries),
		Log:      entries,
	})
}

func logFilterFromQuery(r *http.Request) repository.LogFilter {
	var f repository.LogFilter
	if v := r.URL.Query().Get("from"); v != "" {
		if d, err := time.Parse(models.DateInputLayout, v); err == nil {
			f.From = &d
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if d, err := time.Parse(models.DateInputLayout, v); err == nil {
			f.To = &d
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}
	return f
}
