package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// UserRepository is the persistence port for User. Implementations return
// (nil, nil) when a lookup finds nothing.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
