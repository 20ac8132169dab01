package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/auth"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())`

	if _, err := GetQuerier(ctx, r.db).Exec(ctx, query, userID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) Lookup(ctx context.Context, tokenHash string) (int64, bool, error) {
	query := `
		SELECT user_id, revoked
		FROM refresh_tokens
		WHERE token_hash = $1 AND expires_at > NOW()`

	var userID int64
	var revoked bool
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, tokenHash).Scan(&userID, &revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, auth.ErrInvalidRefreshToken
		}
		return 0, false, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return userID, revoked, nil
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, tokenHash string) error {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx,
		`UPDATE refresh_tokens SET revoked = TRUE WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrInvalidRefreshToken
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID int64) error {
	_, err := GetQuerier(ctx, r.db).Exec(ctx,
		`UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke user refresh tokens: %w", err)
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

type verificationTokenRepositoryImpl struct {
	db *database.DB
}

func NewVerificationTokenRepository(db *database.DB) auth.VerificationTokenRepository {
	return &verificationTokenRepositoryImpl{db: db}
}

func (r *verificationTokenRepositoryImpl) Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO verification_tokens (user_id, token, expires_at, used, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())`

	if _, err := GetQuerier(ctx, r.db).Exec(ctx, query, userID, token, expiresAt); err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}
	return nil
}

// Consume marks a token used and returns its owner. A token can be
// consumed exactly once.
func (r *verificationTokenRepositoryImpl) Consume(ctx context.Context, token string) (int64, error) {
	query := `
		UPDATE verification_tokens
		SET used = TRUE
		WHERE token = $1 AND used = FALSE AND expires_at > NOW()
		RETURNING user_id`

	var userID int64
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, auth.ErrInvalidVerifyToken
		}
		return 0, fmt.Errorf("failed to consume verification token: %w", err)
	}
	return userID, nil
}
