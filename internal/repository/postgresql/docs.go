package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/docs"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type apiKeyRepositoryImpl struct {
	db *database.DB
}

func NewAPIKeyRepository(db *database.DB) docs.APIKeyRepository {
	return &apiKeyRepositoryImpl{db: db}
}

func (r *apiKeyRepositoryImpl) Create(ctx context.Context, k *docs.APIKey) error {
	query := `
		INSERT INTO api_keys (key, label, created_by, revoked, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING id, created_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, k.Key, k.Label, k.CreatedBy).
		Scan(&k.ID, &k.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}
	return nil
}

func (r *apiKeyRepositoryImpl) GetByKey(ctx context.Context, key string) (*docs.APIKey, error) {
	query := `
		SELECT id, key, label, created_by, revoked, last_used_at, created_at
		FROM api_keys WHERE key = $1`

	var k docs.APIKey
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, key).
		Scan(&k.ID, &k.Key, &k.Label, &k.CreatedBy, &k.Revoked, &k.LastUsedAt, &k.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docs.ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return &k, nil
}

func (r *apiKeyRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]docs.APIKey, error) {
	query := `
		SELECT id, key, label, created_by, revoked, last_used_at, created_at
		FROM api_keys WHERE created_by = $1 ORDER BY created_at DESC`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	defer rows.Close()

	var keys []docs.APIKey
	for rows.Next() {
		var k docs.APIKey
		if err := rows.Scan(&k.ID, &k.Key, &k.Label, &k.CreatedBy, &k.Revoked, &k.LastUsedAt, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan api key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *apiKeyRepositoryImpl) Revoke(ctx context.Context, id int64) error {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx,
		`UPDATE api_keys SET revoked = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return docs.ErrAPIKeyNotFound
	}
	return nil
}

func (r *apiKeyRepositoryImpl) TouchLastUsed(ctx context.Context, id int64) error {
	_, err := GetQuerier(ctx, r.db).Exec(ctx,
		`UPDATE api_keys SET last_used_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to touch api key: %w", err)
	}
	return nil
}
