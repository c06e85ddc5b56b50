package services

import (
	"context"

	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

type AdminService struct {
	r repo.Maintenance
}

func NewAdminService(r repo.Maintenance) *AdminService { return &AdminService{r: r} }

// Reset drops and recreates both tables, wiping all users and exercises.
func (s *AdminService) Reset(ctx context.Context) error { return s.r.ResetAll(ctx) }
