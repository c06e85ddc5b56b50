package postgres

import (
	"context"

	"github.com/baharkarakas/exercise-tracker/internal/db"
	"github.com/jackc/pgx/v5/pgxpool"
)

type maintenanceRepo struct{ pool *pgxpool.Pool }

func NewMaintenance(pool *pgxpool.Pool) *maintenanceRepo {
	return &maintenanceRepo{pool: pool}
}

func (r *maintenanceRepo) ResetAll(ctx context.Context) error {
	return db.Reset(ctx, r.pool)
}
