package services

import (
	"context"
	"errors"
	"strings"

	"github.com/baharkarakas/exercise-tracker/internal/api/validate"
	"github.com/baharkarakas/exercise-tracker/internal/ident"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

// ErrUserNotFound signals an unknown user id; handlers map it to a 404.
var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

// CreateOrGet returns the existing user for a known username, otherwise
// inserts a new row. Calling it twice with the same username yields the same
// id both times.
func (s *UserService) CreateOrGet(ctx context.Context, username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if ef := validate.Required("username", username); ef != nil {
		return models.User{}, validate.Errs{*ef}
	}

	u, err := s.r.GetByUsername(ctx, username)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, err
	}
	return s.r.Create(ctx, ident.New(), username)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) { return s.r.List(ctx) }
