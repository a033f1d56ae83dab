package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitstack/exercise-tracker/internal/core/domain"
)

// LogFilter selects a user's exercises for log retrieval. UserID is always
// applied; From and To are inclusive, independently optional bounds on the
// exercise date.
type LogFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  int64 // max records returned; always > 0 by the time it reaches the repo
}

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, e *domain.Exercise) error
	// FindByUser returns exercises matching filter, ordered ascending by date
	// with ties broken by _id.
	FindByUser(ctx context.Context, filter LogFilter) ([]domain.Exercise, error)
}
