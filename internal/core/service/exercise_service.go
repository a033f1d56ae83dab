package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitstack/exercise-tracker/internal/core/domain"
	"github.com/fitstack/exercise-tracker/internal/core/ports"
)

// defaultLogLimit caps log retrieval when the client provides no limit.
const defaultLogLimit = 500

// UserCache abstracts the read-through user cache (Redis). Get returns
// (nil, nil) on a miss. Users are immutable, so cached entries never go stale.
type UserCache interface {
	Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Set(ctx context.Context, u *domain.User) error
}

type ExerciseService struct {
	users     ports.UserRepository
	exercises ports.ExerciseRepository
	cache     UserCache
	logger    zerolog.Logger
}

func NewExerciseService(
	users ports.UserRepository,
	exercises ports.ExerciseRepository,
	cache UserCache,
	logger zerolog.Logger,
) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
		cache:     cache,
		logger:    logger,
	}
}

// Add logs an exercise against an existing user. The user lookup and the
// exercise insert are two independent store operations; no exercise is
// written when the user does not resolve.
func (s *ExerciseService) Add(ctx context.Context, input ports.AddExerciseInput) (*ports.ExerciseResult, error) {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		// A malformed id cannot reference any user.
		return nil, fmt.Errorf("add exercise: %w", domain.ErrUserNotFound)
	}

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	date := domain.Today()
	if input.Date != "" {
		if date, err = domain.ParseDate(input.Date); err != nil {
			return nil, fmt.Errorf("add exercise: %w", err)
		}
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create exercise")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", input.UserID).
		Str("exercise_id", exercise.ID.Hex()).
		Int("duration", input.Duration).
		Msg("exercise logged")

	return &ports.ExerciseResult{
		UserID:      user.ID.Hex(),
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}, nil
}

// GetLogs returns a user's exercises filtered by the optional inclusive
// from/to date bounds and capped at limit entries (500 when not provided).
// Count reflects the entries returned, not the total matching the filter.
func (s *ExerciseService) GetLogs(ctx context.Context, input ports.GetLogsInput) (*ports.LogResult, error) {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get logs: %w", domain.ErrUserNotFound)
	}

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get logs: %w", err)
	}

	filter := ports.LogFilter{UserID: user.ID, Limit: defaultLogLimit}

	if input.From != "" {
		from, err := domain.ParseDate(input.From)
		if err != nil {
			return nil, fmt.Errorf("get logs: from: %w", err)
		}
		filter.From = &from
	}
	if input.To != "" {
		to, err := domain.ParseDate(input.To)
		if err != nil {
			return nil, fmt.Errorf("get logs: to: %w", err)
		}
		filter.To = &to
	}
	if input.Limit != "" {
		n, err := strconv.Atoi(input.Limit)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("get logs: %w: %q", domain.ErrInvalidLimit, input.Limit)
		}
		filter.Limit = int64(n)
	}

	exercises, err := s.exercises.FindByUser(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to query exercise log")
		return nil, err
	}

	entries := make([]ports.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, ports.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}

	return &ports.LogResult{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}

// lookupUser resolves a user via the cache, falling back to the store. Cache
// failures are logged and ignored; the store is authoritative.
func (s *ExerciseService) lookupUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", id.Hex()).Msg("user cache read failed, using store")
	} else if cached != nil {
		return cached, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id.Hex()).Msg("failed to populate user cache")
	}
	return user, nil
}
