package repository

import (
	"context"
	"errors"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("not found")

// LogFilter narrows and caps an exercise listing. Nil bounds mean unbounded;
// both bounds are inclusive. Limit <= 0 means no cap.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type Users interface {
	Create(ctx context.Context, id, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type Exercises interface {
	Create(ctx context.Context, e models.Exercise) (models.Exercise, error)
	ListByUser(ctx context.Context, userID string, f LogFilter) ([]models.Exercise, error)
}

type Maintenance interface {
	// ResetAll drops both tables and recreates them empty.
	ResetAll(ctx context.Context) error
}
