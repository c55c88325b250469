package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo in-memory adapter for the UserRepository port.
type UserRepo struct {
	store *Store
}

// NewUserRepository binds the adapter to a store.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create stores a new user, enforcing email uniqueness.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	c := *user
	r.store.users[user.ID] = &c
	return nil
}

// GetByID returns a user by ID, (nil, nil) when absent.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

// GetByEmail returns a user by email, (nil, nil) when absent.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// Update overwrites a stored user.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *user
	r.store.users[user.ID] = &c
	return nil
}

// List returns users sorted by creation date, newest first.
func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		c := *u
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

// paginate applies limit/offset to an already sorted slice.
func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
