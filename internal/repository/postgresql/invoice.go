package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/invoice"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.Repository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `id, patient_id, company_id, number, amount, currency, status,
	issued_at, due_at, paid_at, created_at, updated_at`

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(&inv.ID, &inv.PatientID, &inv.CompanyID, &inv.Number, &inv.Amount,
		&inv.Currency, &inv.Status, &inv.IssuedAt, &inv.DueAt, &inv.PaidAt,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepositoryImpl) Create(ctx context.Context, inv *invoice.Invoice, items []invoice.LineItem) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			INSERT INTO invoices (patient_id, company_id, number, amount, currency, status,
				due_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING id, created_at, updated_at`

		err := q.QueryRow(ctx, query,
			inv.PatientID, inv.CompanyID, inv.Number, inv.Amount, inv.Currency, inv.Status, inv.DueAt).
			Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		for i := range items {
			items[i].InvoiceID = inv.ID
			err := q.QueryRow(ctx,
				`INSERT INTO invoice_items (invoice_id, request_id, description, quantity, unit_price, total)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 RETURNING id`,
				items[i].InvoiceID, items[i].RequestID, items[i].Description,
				items[i].Quantity, items[i].UnitPrice, items[i].Total).
				Scan(&items[i].ID)
			if err != nil {
				return fmt.Errorf("failed to create invoice item: %w", err)
			}
		}
		return nil
	})
}

func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id int64) (*invoice.Invoice, []invoice.LineItem, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, invoice.ErrInvoiceNotFound
		}
		return nil, nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	rows, err := GetQuerier(ctx, r.db).Query(ctx,
		`SELECT id, invoice_id, request_id, description, quantity, unit_price, total
		 FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	defer rows.Close()

	var items []invoice.LineItem
	for rows.Next() {
		var item invoice.LineItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.RequestID, &item.Description,
			&item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		items = append(items, item)
	}
	return inv, items, rows.Err()
}

func (r *invoiceRepositoryImpl) ListByPatient(ctx context.Context, patientID int64) ([]invoice.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE patient_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, patientID)
}

func (r *invoiceRepositoryImpl) ListByCompany(ctx context.Context, companyID int64, status string) ([]invoice.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query, args...)
}

func (r *invoiceRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]invoice.Invoice, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepositoryImpl) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $2, issued_at = $3, due_at = $4, paid_at = $5, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		inv.ID, inv.Status, inv.IssuedAt, inv.DueAt, inv.PaidAt)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepositoryImpl) NextNumber(ctx context.Context, companyID int64) (int64, error) {
	var next int64
	err := GetQuerier(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) + 1 FROM invoices WHERE company_id = $1`, companyID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next invoice number: %w", err)
	}
	return next, nil
}
