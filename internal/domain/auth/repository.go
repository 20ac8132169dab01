package auth

import (
	"context"
	"time"
)

type RefreshTokenRepository interface {
	Store(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	// Lookup returns the owning user and revocation state for a token hash.
	Lookup(ctx context.Context, tokenHash string) (userID int64, revoked bool, err error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type VerificationTokenRepository interface {
	Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	Consume(ctx context.Context, token string) (userID int64, err error)
}
