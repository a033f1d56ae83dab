package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitstack/exercise-tracker/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user and assigns its ID.
	Create(ctx context.Context, u *domain.User) error
	// FindByID retrieves a user, returning domain.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// FindAll returns every user in store order. An empty store yields an
	// empty slice, not an error.
	FindAll(ctx context.Context) ([]domain.User, error)
}
