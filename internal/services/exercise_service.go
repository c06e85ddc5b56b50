package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/api/validate"
	"github.com/baharkarakas/exercise-tracker/internal/ident"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

// AddExerciseInput carries the raw body fields; duration and date arrive as
// strings because the endpoint accepts form bodies.
type AddExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

type ExerciseService struct {
	users     repo.Users
	exercises repo.Exercises
	now       func() time.Time
}

func NewExerciseService(users repo.Users, exercises repo.Exercises) *ExerciseService {
	return &ExerciseService{users: users, exercises: exercises, now: time.Now}
}

// WithClock overrides the wall clock used for defaulted dates. Tests only.
func (s *ExerciseService) WithClock(now func() time.Time) *ExerciseService {
	s.now = now
	return s
}

// Add validates the input, resolves the user and inserts one exercise row.
// An empty date defaults to today's date on the server clock.
func (s *ExerciseService) Add(ctx context.Context, userID string, in AddExerciseInput) (models.Exercise, models.User, error) {
	var errs validate.Errs
	if ef := validate.Required("description", in.Description); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := validate.Required("duration", in.Duration); ef != nil {
		errs = append(errs, *ef)
	}

	var duration int
	if in.Duration != "" {
		n, err := strconv.Atoi(strings.TrimSpace(in.Duration))
		if err != nil {
			errs = append(errs, validate.ErrField{Field: "duration", Msg: "must be an integer"})
		} else if ef := validate.MinInt("duration", int64(n), 1); ef != nil {
			errs = append(errs, *ef)
		} else {
			duration = n
		}
	}

	date := truncateToDay(s.now())
	if in.Date != "" {
		d, err := time.Parse(models.DateInputLayout, in.Date)
		if err != nil {
			errs = append(errs, validate.ErrField{Field: "date", Msg: "must be YYYY-MM-DD"})
		} else {
			date = d
		}
	}
	if len(errs) > 0 {
		return models.Exercise{}, models.User{}, errs
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Exercise{}, models.User{}, ErrUserNotFound
		}
		return models.Exercise{}, models.User{}, err
	}

	e, err := s.exercises.Create(ctx, models.Exercise{
		ID:          ident.New(),
		UserID:      u.ID,
		Description: strings.TrimSpace(in.Description),
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return models.Exercise{}, models.User{}, err
	}
	return e, u, nil
}

// Logs resolves the user and returns their exercises filtered by f, date
// ascending.
func (s *ExerciseService) Logs(ctx context.Context, userID string, f repo.LogFilter) (models.User, []models.Exercise, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, nil, ErrUserNotFound
		}
		return models.User{}, nil, err
	}
	list, err := s.exercises.ListByUser(ctx, userID, f)
	if err != nil {
		return models.User{}, nil, err
	}
	return u, list, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
