package repository

import (
	"context"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
)

// UserRepository defines the credential-store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail returns the first row matching the email; the store does
	// not enforce uniqueness.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateImage(ctx context.Context, id int64, image []byte) (int64, error)
}
