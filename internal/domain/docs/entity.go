package docs

import "time"

// APIKey grants read access to the documentation micro-site.
type APIKey struct {
	ID         int64      `json:"id"`
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	CreatedBy  int64      `json:"created_by"`
	Revoked    bool       `json:"revoked"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Page is a markdown documentation page served by the micro-site.
type Page struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
