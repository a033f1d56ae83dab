package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fitstack/exercise-tracker/internal/core/domain"
	"github.com/fitstack/exercise-tracker/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates and persists a new user. No uniqueness check is applied to
// the username; two registrations with the same name yield two users.
func (s *UserService) Register(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{Username: username}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Str("username", username).Msg("user registered")
	return user, nil
}

// List returns every user in store order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
