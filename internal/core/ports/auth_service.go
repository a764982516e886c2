package ports

import (
	"context"

	"github.com/parlevel/stocktake-api/internal/core/domain"
)

// TokenRevoker remembers revoked session tokens until they expire.
type TokenRevoker interface {
	// Revoke marks the token id as revoked for ttlSeconds.
	Revoke(ctx context.Context, tokenID string, ttlSeconds int64) error
	// IsRevoked reports whether the token id has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService covers account registration, credential verification and
// session token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the session token presented by a logged-in user.
	Logout(ctx context.Context, token string) error
	// SetPassword replaces the user's stored digest with a hash of plaintext.
	SetPassword(ctx context.Context, username, plaintext string) error
}
