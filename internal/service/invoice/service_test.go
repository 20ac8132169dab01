package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresync/staffing-backend-go/internal/domain/invoice"
	"github.com/caresync/staffing-backend-go/internal/domain/patient"
)

var errNotFound = errors.New("not found")

type fakeInvoiceRepo struct {
	createFn     func(ctx context.Context, inv *invoice.Invoice, items []invoice.LineItem) error
	getByIDFn    func(ctx context.Context, id int64) (*invoice.Invoice, []invoice.LineItem, error)
	updateFn     func(ctx context.Context, inv *invoice.Invoice) error
	nextNumberFn func(ctx context.Context, companyID int64) (int64, error)
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice, items []invoice.LineItem) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, inv, items)
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (*invoice.Invoice, []invoice.LineItem, error) {
	if f.getByIDFn == nil {
		return nil, nil, errNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeInvoiceRepo) ListByPatient(ctx context.Context, patientID int64) ([]invoice.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) ListByCompany(ctx context.Context, companyID int64, status string) ([]invoice.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, inv)
}

func (f *fakeInvoiceRepo) NextNumber(ctx context.Context, companyID int64) (int64, error) {
	if f.nextNumberFn == nil {
		return 1, nil
	}
	return f.nextNumberFn(ctx, companyID)
}

type fakePatientRepo struct{}

func (f *fakePatientRepo) Create(ctx context.Context, p *patient.Patient) error { return nil }
func (f *fakePatientRepo) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	return &patient.Patient{ID: id, IsActive: true}, nil
}
func (f *fakePatientRepo) GetByUserID(ctx context.Context, userID int64) (*patient.Patient, error) {
	return nil, errNotFound
}
func (f *fakePatientRepo) ListByCompany(ctx context.Context, companyID int64) ([]patient.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) Update(ctx context.Context, p *patient.Patient) error { return nil }

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestCreate_ComputesTotalsAndNumber(t *testing.T) {
	var created *invoice.Invoice
	repo := &fakeInvoiceRepo{
		createFn: func(_ context.Context, inv *invoice.Invoice, items []invoice.LineItem) error {
			inv.ID = 10
			created = inv
			return nil
		},
		nextNumberFn: func(_ context.Context, _ int64) (int64, error) {
			return 17, nil
		},
	}

	svc := NewInvoiceService(repo, &fakePatientRepo{})
	result, err := svc.Create(context.Background(), 3, invoice.CreateRequest{
		PatientID: 7,
		Currency:  "USD",
		DueAt:     "2025-10-01",
		Items: []invoice.LineItemRequest{
			{Description: "Home visit", Quantity: d("2"), UnitPrice: d("85.50")},
			{Description: "Travel", Quantity: d("1.5"), UnitPrice: d("0.67")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-3-0017", created.Number)
	assert.Equal(t, invoice.StatusDraft, created.Status)
	// 171.00 + round(1.005) = 171.00 + 1.01
	assert.Equal(t, "172.01", created.Amount.StringFixed(2))
	require.Len(t, result.Items, 2)
	assert.Equal(t, "171.00", result.Items[0].Total.StringFixed(2))
	assert.Equal(t, "1.01", result.Items[1].Total.StringFixed(2))
	require.NotNil(t, created.DueAt)
}

func TestCreate_RequiresLineItems(t *testing.T) {
	svc := NewInvoiceService(&fakeInvoiceRepo{}, &fakePatientRepo{})
	_, err := svc.Create(context.Background(), 3, invoice.CreateRequest{
		PatientID: 7,
		Currency:  "USD",
	})
	assert.Error(t, err)
}

func TestStatusTransitions(t *testing.T) {
	current := &invoice.Invoice{ID: 10, Status: invoice.StatusDraft}
	repo := &fakeInvoiceRepo{
		getByIDFn: func(_ context.Context, _ int64) (*invoice.Invoice, []invoice.LineItem, error) {
			return current, nil, nil
		},
		updateFn: func(_ context.Context, inv *invoice.Invoice) error {
			current = inv
			return nil
		},
	}
	svc := NewInvoiceService(repo, &fakePatientRepo{})
	ctx := context.Background()

	// Paying a draft is rejected.
	_, err := svc.MarkPaid(ctx, 10)
	assert.ErrorIs(t, err, invoice.ErrNotIssued)

	issued, err := svc.Issue(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusIssued, issued.Status)
	assert.NotNil(t, issued.IssuedAt)

	// Issuing twice is rejected.
	_, err = svc.Issue(ctx, 10)
	assert.ErrorIs(t, err, invoice.ErrNotDraft)

	paid, err := svc.MarkPaid(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	// A paid invoice can be neither re-paid nor voided.
	_, err = svc.MarkPaid(ctx, 10)
	assert.ErrorIs(t, err, invoice.ErrAlreadyPaid)
	_, err = svc.Void(ctx, 10)
	assert.ErrorIs(t, err, invoice.ErrAlreadyPaid)
}
