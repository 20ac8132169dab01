package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/caresync/staffing-backend-go/internal/domain/docs"
)

type docsServiceImpl struct {
	apiKeyRepo docs.APIKeyRepository
	contentDir string
}

func NewDocsService(apiKeyRepo docs.APIKeyRepository, contentDir string) docs.Service {
	return &docsServiceImpl{apiKeyRepo: apiKeyRepo, contentDir: contentDir}
}

func (s *docsServiceImpl) CreateAPIKey(ctx context.Context, userID int64, label string) (*docs.APIKey, error) {
	k := &docs.APIKey{
		Key:       uuid.NewString(),
		Label:     label,
		CreatedBy: userID,
	}
	if err := s.apiKeyRepo.Create(ctx, k); err != nil {
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}
	return k, nil
}

func (s *docsServiceImpl) ListAPIKeys(ctx context.Context, userID int64) ([]docs.APIKey, error) {
	return s.apiKeyRepo.ListByUser(ctx, userID)
}

func (s *docsServiceImpl) RevokeAPIKey(ctx context.Context, id int64) error {
	return s.apiKeyRepo.Revoke(ctx, id)
}

func (s *docsServiceImpl) ValidateAPIKey(ctx context.Context, key string) error {
	k, err := s.apiKeyRepo.GetByKey(ctx, key)
	if err != nil {
		return docs.ErrAPIKeyNotFound
	}
	if k.Revoked {
		return docs.ErrAPIKeyRevoked
	}
	return s.apiKeyRepo.TouchLastUsed(ctx, k.ID)
}

func (s *docsServiceImpl) GetPage(ctx context.Context, slug string) (*docs.Page, error) {
	slug = filepath.Base(slug)
	content, err := os.ReadFile(filepath.Join(s.contentDir, slug+".md"))
	if err != nil {
		return nil, docs.ErrPageNotFound
	}
	return &docs.Page{
		Slug:    slug,
		Title:   pageTitle(slug, string(content)),
		Content: string(content),
	}, nil
}

func (s *docsServiceImpl) ListPages(ctx context.Context) ([]docs.Page, error) {
	entries, err := os.ReadDir(s.contentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs content directory: %w", err)
	}

	pages := make([]docs.Page, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		content, err := os.ReadFile(filepath.Join(s.contentDir, entry.Name()))
		if err != nil {
			continue
		}
		pages = append(pages, docs.Page{Slug: slug, Title: pageTitle(slug, string(content))})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages, nil
}

// pageTitle pulls the first markdown heading, falling back to the slug.
func pageTitle(slug, content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return slug
}
