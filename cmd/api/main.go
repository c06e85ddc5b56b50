package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/api"
	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/db"
	"github.com/baharkarakas/exercise-tracker/internal/logger"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/repository/postgres"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Schema init failures are non-fatal: the affected endpoints surface
	// 500s until the tables appear.
	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Error("schema init", "err", err)
	}

	repos := postgres.NewRepositories(pool)

	userSvc := services.NewUserService(repos.Users)
	exerciseSvc := services.NewExerciseService(repos.Users, repos.Exercises)
	adminSvc := services.NewAdminService(repos.Maintenance)

	metrics.Init()
	r := api.NewRouter(cfg, userSvc, exerciseSvc, adminSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
