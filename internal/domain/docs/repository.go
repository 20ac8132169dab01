package docs

import "context"

type APIKeyRepository interface {
	Create(ctx context.Context, k *APIKey) error
	GetByKey(ctx context.Context, key string) (*APIKey, error)
	ListByUser(ctx context.Context, userID int64) ([]APIKey, error)
	Revoke(ctx context.Context, id int64) error
	TouchLastUsed(ctx context.Context, id int64) error
}
