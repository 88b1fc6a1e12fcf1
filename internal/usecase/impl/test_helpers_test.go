package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memUserRepo is an in-memory UserRepository. Its mutex-guarded map plays the
// role of the storage-level unique constraint on login.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	findErr   error
	createErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) FindByLogin(_ context.Context, login string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[login]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cloned := *user

	return &cloned, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Login]; exists {
		return repository.ErrDuplicateLogin
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	cloned := *user
	r.users[user.Login] = &cloned

	return nil
}

// memItemRepo is an in-memory ItemRepository.
type memItemRepo struct {
	mu    sync.Mutex
	items []*entity.Item

	createErr error
	findErr   error
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{}
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	cloned := *item
	r.items = append(r.items, &cloned)

	return nil
}

func (r *memItemRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Item, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owned := make([]*entity.Item, 0)
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			cloned := *item
			owned = append(owned, &cloned)
		}
	}

	return owned, nil
}

// memTxManager hands the same in-memory repositories to every transaction.
// There is nothing to roll back; the tests only need the call shape.
type memTxManager struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memTxManager) UserRepo() repository.UserRepository { return m.userRepo }
func (m *memTxManager) ItemRepo() repository.ItemRepository { return m.itemRepo }

// stubTokenService mints predictable tokens without signing anything.
type stubTokenService struct {
	issueErr error
	issued   []*entity.User
}

func (s *stubTokenService) Issue(user *entity.User) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	s.issued = append(s.issued, user)

	return "token-" + user.ID.String(), nil
}

func (s *stubTokenService) Verify(string) (*service.Claims, error) {
	panic("not used by these tests")
}

// stubHasher makes hashing observable without bcrypt's cost.
type stubHasher struct {
	hashErr error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}

	return "hashed:" + password, nil
}

func (s *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}
