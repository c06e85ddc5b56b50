package api

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baharkarakas/exercise-tracker/internal/api/handlers"
	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/middleware"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

//go:embed static/index.html
var indexHTML []byte

func NewRouter(cfg config.Config, us *services.UserService, es *services.ExerciseService, as *services.AdminService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})

	uh := handlers.NewUserHandler(us)
	eh := handlers.NewExerciseHandler(es)
	ah := handlers.NewAdminHandler(as)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", uh.Create)
		r.Get("/users", uh.List)
		r.Post("/users/{id}/exercises", eh.Add)
		r.Get("/users/{id}/logs", eh.Logs)
		r.Get("/reset", ah.Reset)
	})

	return r
}
