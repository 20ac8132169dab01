package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/caresync/staffing-backend-go/internal/domain/invoice"
	"github.com/caresync/staffing-backend-go/internal/domain/patient"
)

type invoiceServiceImpl struct {
	invoiceRepo invoice.Repository
	patientRepo patient.Repository
}

func NewInvoiceService(invoiceRepo invoice.Repository, patientRepo patient.Repository) invoice.Service {
	return &invoiceServiceImpl{invoiceRepo: invoiceRepo, patientRepo: patientRepo}
}

func (s *invoiceServiceImpl) Create(ctx context.Context, companyID int64, req invoice.CreateRequest) (invoice.Response, error) {
	if err := req.Validate(); err != nil {
		return invoice.Response{}, err
	}

	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return invoice.Response{}, patient.ErrPatientNotFound
	}

	seq, err := s.invoiceRepo.NextNumber(ctx, companyID)
	if err != nil {
		return invoice.Response{}, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	inv := &invoice.Invoice{
		PatientID: req.PatientID,
		CompanyID: companyID,
		Number:    fmt.Sprintf("INV-%d-%04d", companyID, seq),
		Currency:  req.Currency,
		Status:    invoice.StatusDraft,
	}
	if req.DueAt != "" {
		dueAt, _ := time.Parse("2006-01-02", req.DueAt)
		inv.DueAt = &dueAt
	}

	items := make([]invoice.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		total := item.Quantity.Mul(item.UnitPrice).Round(2)
		items = append(items, invoice.LineItem{
			RequestID:   item.RequestID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       total,
		})
		inv.Amount = inv.Amount.Add(total)
	}

	if err := s.invoiceRepo.Create(ctx, inv, items); err != nil {
		return invoice.Response{}, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice.Response{Invoice: *inv, Items: items}, nil
}

func (s *invoiceServiceImpl) GetByID(ctx context.Context, id int64) (invoice.Response, error) {
	inv, items, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.Response{}, err
	}
	return invoice.Response{Invoice: *inv, Items: items}, nil
}

func (s *invoiceServiceImpl) ListByPatient(ctx context.Context, patientID int64) ([]invoice.Invoice, error) {
	return s.invoiceRepo.ListByPatient(ctx, patientID)
}

func (s *invoiceServiceImpl) ListByCompany(ctx context.Context, companyID int64, status string) ([]invoice.Invoice, error) {
	return s.invoiceRepo.ListByCompany(ctx, companyID, status)
}

func (s *invoiceServiceImpl) Issue(ctx context.Context, id int64) (invoice.Response, error) {
	inv, items, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.Response{}, err
	}
	if inv.Status != invoice.StatusDraft {
		return invoice.Response{}, invoice.ErrNotDraft
	}

	now := time.Now()
	inv.Status = invoice.StatusIssued
	inv.IssuedAt = &now
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return invoice.Response{}, fmt.Errorf("failed to issue invoice: %w", err)
	}
	return invoice.Response{Invoice: *inv, Items: items}, nil
}

func (s *invoiceServiceImpl) MarkPaid(ctx context.Context, id int64) (invoice.Response, error) {
	inv, items, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.Response{}, err
	}
	if inv.Status == invoice.StatusPaid {
		return invoice.Response{}, invoice.ErrAlreadyPaid
	}
	if inv.Status != invoice.StatusIssued {
		return invoice.Response{}, invoice.ErrNotIssued
	}

	now := time.Now()
	inv.Status = invoice.StatusPaid
	inv.PaidAt = &now
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return invoice.Response{}, fmt.Errorf("failed to mark invoice paid: %w", err)
	}
	return invoice.Response{Invoice: *inv, Items: items}, nil
}

func (s *invoiceServiceImpl) Void(ctx context.Context, id int64) (invoice.Response, error) {
	inv, items, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.Response{}, err
	}
	if inv.Status == invoice.StatusPaid {
		return invoice.Response{}, invoice.ErrAlreadyPaid
	}

	inv.Status = invoice.StatusVoid
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return invoice.Response{}, fmt.Errorf("failed to void invoice: %w", err)
	}
	return invoice.Response{Invoice: *inv, Items: items}, nil
}
