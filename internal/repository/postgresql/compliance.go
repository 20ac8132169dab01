package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/compliance"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type complianceRepositoryImpl struct {
	db *database.DB
}

func NewComplianceRepository(db *database.DB) compliance.Repository {
	return &complianceRepositoryImpl{db: db}
}

const complianceColumns = `id, staff_id, document_type, title, file_path, issued_at, expires_at,
	status, created_at, updated_at`

func scanComplianceDocument(row pgx.Row) (*compliance.Document, error) {
	var d compliance.Document
	err := row.Scan(&d.ID, &d.StaffID, &d.DocumentType, &d.Title, &d.FilePath,
		&d.IssuedAt, &d.ExpiresAt, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *complianceRepositoryImpl) Create(ctx context.Context, d *compliance.Document) error {
	query := `
		INSERT INTO compliance_documents (staff_id, document_type, title, file_path,
			issued_at, expires_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		d.StaffID, d.DocumentType, d.Title, d.FilePath, d.IssuedAt, d.ExpiresAt, d.Status).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create compliance document: %w", err)
	}
	return nil
}

func (r *complianceRepositoryImpl) GetByID(ctx context.Context, id int64) (*compliance.Document, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_documents WHERE id = $1`

	d, err := scanComplianceDocument(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, compliance.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get compliance document: %w", err)
	}
	return d, nil
}

func (r *complianceRepositoryImpl) ListByStaff(ctx context.Context, staffID int64) ([]compliance.Document, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_documents WHERE staff_id = $1 ORDER BY expires_at NULLS LAST`
	return r.list(ctx, query, staffID)
}

func (r *complianceRepositoryImpl) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]compliance.Document, error) {
	query := `
		SELECT ` + complianceColumns + `
		FROM compliance_documents
		WHERE expires_at IS NOT NULL AND expires_at < $1 AND status != $2
		ORDER BY expires_at`

	return r.list(ctx, query, cutoff, compliance.StatusExpired)
}

func (r *complianceRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]compliance.Document, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list compliance documents: %w", err)
	}
	defer rows.Close()

	var docs []compliance.Document
	for rows.Next() {
		d, err := scanComplianceDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compliance document: %w", err)
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

func (r *complianceRepositoryImpl) Update(ctx context.Context, d *compliance.Document) error {
	query := `
		UPDATE compliance_documents
		SET title = $2, file_path = $3, issued_at = $4, expires_at = $5, status = $6, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		d.ID, d.Title, d.FilePath, d.IssuedAt, d.ExpiresAt, d.Status)
	if err != nil {
		return fmt.Errorf("failed to update compliance document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compliance.ErrDocumentNotFound
	}
	return nil
}

func (r *complianceRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx,
		`UPDATE compliance_documents SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update compliance document status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compliance.ErrDocumentNotFound
	}
	return nil
}
