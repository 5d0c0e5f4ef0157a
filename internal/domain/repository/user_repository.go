package repository

import (
	"context"
	"errors"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the interface for user-related storage operations.
// Implementations must enforce email uniqueness on Insert and report it as
// ErrDuplicateEmail.
type UserRepository interface {
	// Insert stores u and assigns its ID and CreatedAt.
	Insert(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
