package ports

import (
	"context"

	"github.com/parlevel/stocktake-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdatePasswordHash overwrites the stored digest for the given user.
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
}
