package docs

import "context"

type Service interface {
	CreateAPIKey(ctx context.Context, userID int64, label string) (*APIKey, error)
	ListAPIKeys(ctx context.Context, userID int64) ([]APIKey, error)
	RevokeAPIKey(ctx context.Context, id int64) error
	// ValidateAPIKey checks the key and records its use.
	ValidateAPIKey(ctx context.Context, key string) error

	GetPage(ctx context.Context, slug string) (*Page, error)
	ListPages(ctx context.Context) ([]Page, error)
}
