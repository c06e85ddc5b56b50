package postgres

import (
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users       repo.Users
	Exercises   repo.Exercises
	Maintenance repo.Maintenance
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:       &usersRepo{pool},
		Exercises:   &exercisesRepo{pool},
		Maintenance: &maintenanceRepo{pool},
	}
}
