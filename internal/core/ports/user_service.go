package ports

import (
	"context"

	"github.com/fitstack/exercise-tracker/internal/core/domain"
)

// UserService defines use-case operations for user accounts.
type UserService interface {
	// Register creates a new user. Usernames are not deduplicated.
	Register(ctx context.Context, username string) (*domain.User, error)
	// List returns all users in store order.
	List(ctx context.Context) ([]domain.User, error)
}
