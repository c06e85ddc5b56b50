package services

import (
	"context"
	"sort"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

// In-memory stand-ins for the postgres repositories. ListByUser mirrors the
// real query: date ascending, inclusive bounds, optional limit.

type stubUsers struct {
	byID      map[string]models.User
	createErr error
}

func newStubUsers() *stubUsers {
	return &stubUsers{byID: make(map[string]models.User)}
}

func (r *stubUsers) Create(_ context.Context, id, username string) (models.User, error) {
	if r.createErr != nil {
		return models.User{}, r.createErr
	}
	u := models.User{ID: id, Username: username}
	r.byID[id] = u
	return u, nil
}

func (r *stubUsers) GetByID(_ context.Context, id string) (models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *stubUsers) GetByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (r *stubUsers) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type stubExercises struct {
	rows      []models.Exercise
	createErr error
}

func (r *stubExercises) Create(_ context.Context, e models.Exercise) (models.Exercise, error) {
	if r.createErr != nil {
		return models.Exercise{}, r.createErr
	}
	r.rows = append(r.rows, e)
	return e, nil
}

func (r *stubExercises) ListByUser(_ context.Context, userID string, f repo.LogFilter) ([]models.Exercise, error) {
	var out []models.Exercise
	for _, e := range r.rows {
		if e.UserID != userID {
			continue
		}
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type stubMaintenance struct {
	users     *stubUsers
	exercises *stubExercises
	resets    int
}

func (r *stubMaintenance) ResetAll(context.Context) error {
	r.users.byID = make(map[string]models.User)
	r.exercises.rows = nil
	r.resets++
	return nil
}
