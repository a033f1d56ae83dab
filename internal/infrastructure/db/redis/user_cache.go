package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitstack/exercise-tracker/internal/core/domain"
)

// Users are never mutated or deleted through the API, so cached entries can
// only become garbage, never stale. The TTL bounds memory, not correctness.
const userCacheTTL = 15 * time.Minute

// UserCache is a read-through cache for user records, backed by Redis.
// Key format: user:<hex object id>
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

type cachedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("user cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("user cache decode: %w", err)
	}
	oid, err := primitive.ObjectIDFromHex(cu.ID)
	if err != nil {
		return nil, fmt.Errorf("user cache decode id: %w", err)
	}

	return &domain.User{ID: oid, Username: cu.Username}, nil
}

// Set stores the user under its id (expires after userCacheTTL).
func (c *UserCache) Set(ctx context.Context, u *domain.User) error {
	raw, err := json.Marshal(cachedUser{ID: u.ID.Hex(), Username: u.Username})
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(u.ID), raw, userCacheTTL).Err()
}

func (c *UserCache) key(id primitive.ObjectID) string {
	return "user:" + id.Hex()
}
