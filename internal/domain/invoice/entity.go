package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft  = "draft"
	StatusIssued = "issued"
	StatusPaid   = "paid"
	StatusVoid   = "void"
)

// Invoice bills a patient for completed service requests.
type Invoice struct {
	ID        int64           `json:"id"`
	PatientID int64           `json:"patient_id"`
	CompanyID int64           `json:"company_id"`
	Number    string          `json:"number"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	IssuedAt  *time.Time      `json:"issued_at,omitempty"`
	DueAt     *time.Time      `json:"due_at,omitempty"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LineItem is one billed service on an invoice.
type LineItem struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id"`
	RequestID   *int64          `json:"request_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}
