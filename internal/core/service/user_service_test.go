package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitstack/exercise-tracker/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	order     []primitive.ObjectID
	users     map[primitive.ObjectID]*domain.User
	createErr error
	findErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	u.ID = primitive.NewObjectID()
	clone := *u
	r.users[u.ID] = &clone
	r.order = append(r.order, u.ID)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.users[id])
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), "fcc_test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID.IsZero() {
		t.Error("expected a generated id")
	}
	if user.Username != "fcc_test" {
		t.Errorf("expected username %q, got %q", "fcc_test", user.Username)
	}
}

func TestUserService_Register_IdsAreUnique(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		user, err := svc.Register(context.Background(), "dup")
		if err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
		if seen[user.ID.Hex()] {
			t.Fatalf("duplicate id %s", user.ID.Hex())
		}
		seen[user.ID.Hex()] = true
	}
}

func TestUserService_Register_NoUniquenessOnUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = svc.Register(context.Background(), "same")
	_, err := svc.Register(context.Background(), "same")
	if err != nil {
		t.Fatalf("duplicate usernames must be allowed, got %v", err)
	}
	if len(repo.users) != 2 {
		t.Errorf("expected 2 stored users, got %d", len(repo.users))
	}
}

func TestUserService_Register_RepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "x"); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestUserService_List_ReturnsAllInStoreOrder(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	first, _ := svc.Register(context.Background(), "a")
	second, _ := svc.Register(context.Background(), "b")

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != first.ID || users[1].ID != second.ID {
		t.Error("expected store order to be preserved")
	}
}

func TestUserService_List_EmptyStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(users) != 0 {
		t.Errorf("expected 0 users, got %d", len(users))
	}
}

func TestUserService_List_RepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("db unavailable")
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}
