package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type exercisesRepo struct{ pool *pgxpool.Pool }

func NewExercises(pool *pgxpool.Pool) repository.Exercises {
	return &exercisesRepo{pool: pool}
}

func (r *exercisesRepo) Create(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO exercises(id, user_id, description, duration, date)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING id, user_id, description, duration, date, created_at`,
		e.ID, e.UserID, e.Description, e.Duration, e.Date,
	).Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt)
	return e, err
}

func (r *exercisesRepo) ListByUser(ctx context.Context, userID string, f repository.LogFilter) ([]models.Exercise, error) {
	q, args := buildListQuery(userID, f)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// buildListQuery appends the optional clauses one at a time so the parameter
// indexes always line up with the args slice.
func buildListQuery(userID string, f repository.LogFilter) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT id, user_id, description, duration, date, created_at
	   FROM exercises
	  WHERE user_id=$1`)
	args := []any{userID}

	if f.From != nil {
		args = append(args, *f.From)
		b.WriteString(` AND date>=$` + strconv.Itoa(len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		b.WriteString(` AND date<=$` + strconv.Itoa(len(args)))
	}
	b.WriteString(` ORDER BY date ASC`)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		b.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}
	return b.String(), args
}
