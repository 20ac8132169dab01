package compliance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/caresync/staffing-backend-go/internal/domain/compliance"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/pkg/storage"
)

// Documents expiring within this window are flagged before they lapse.
const expiryWarningWindow = 30 * 24 * time.Hour

type complianceServiceImpl struct {
	documentRepo compliance.Repository
	staffRepo    staff.Repository
	fileStorage  storage.FileStorage
	baseURL      string
}

func NewComplianceService(
	documentRepo compliance.Repository,
	staffRepo staff.Repository,
	fileStorage storage.FileStorage,
	baseURL string,
) compliance.Service {
	return &complianceServiceImpl{
		documentRepo: documentRepo,
		staffRepo:    staffRepo,
		fileStorage:  fileStorage,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *complianceServiceImpl) Create(ctx context.Context, req compliance.CreateRequest) (compliance.Response, error) {
	if err := req.Validate(); err != nil {
		return compliance.Response{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return compliance.Response{}, staff.ErrStaffNotFound
	}

	d := &compliance.Document{
		StaffID:      req.StaffID,
		DocumentType: req.DocumentType,
		Title:        req.Title,
		IssuedAt:     req.IssuedAtTime(),
		ExpiresAt:    req.ExpiresAtTime(),
		Status:       statusForExpiry(req.ExpiresAtTime(), time.Now()),
	}
	if err := s.documentRepo.Create(ctx, d); err != nil {
		return compliance.Response{}, fmt.Errorf("failed to create compliance document: %w", err)
	}
	return compliance.ToResponse(d, s.fileURL(d)), nil
}

func (s *complianceServiceImpl) GetByID(ctx context.Context, id int64) (compliance.Response, error) {
	d, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return compliance.Response{}, err
	}
	return compliance.ToResponse(d, s.fileURL(d)), nil
}

func (s *complianceServiceImpl) ListByStaff(ctx context.Context, staffID int64) ([]compliance.Response, error) {
	documents, err := s.documentRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]compliance.Response, 0, len(documents))
	for i := range documents {
		responses = append(responses, compliance.ToResponse(&documents[i], s.fileURL(&documents[i])))
	}
	return responses, nil
}

func (s *complianceServiceImpl) AttachFile(ctx context.Context, id int64, filename string, content io.Reader) (compliance.Response, error) {
	d, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return compliance.Response{}, err
	}

	filePath := fmt.Sprintf("compliance/%d/%s", d.ID, path.Base(filename))
	if _, err := s.fileStorage.Save(ctx, filePath, content); err != nil {
		return compliance.Response{}, fmt.Errorf("failed to store document file: %w", err)
	}

	d.FilePath = filePath
	if err := s.documentRepo.Update(ctx, d); err != nil {
		return compliance.Response{}, fmt.Errorf("failed to update compliance document: %w", err)
	}
	return compliance.ToResponse(d, s.fileURL(d)), nil
}

func (s *complianceServiceImpl) ReadFile(ctx context.Context, id int64) ([]byte, string, error) {
	d, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if d.FilePath == "" {
		return nil, "", compliance.ErrNoFileAttached
	}

	content, err := s.fileStorage.Read(ctx, d.FilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document file: %w", err)
	}
	return content, path.Base(d.FilePath), nil
}

func (s *complianceServiceImpl) SweepExpiry(ctx context.Context) (int, error) {
	now := time.Now()
	documents, err := s.documentRepo.ListExpiringBefore(ctx, now.Add(expiryWarningWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring documents: %w", err)
	}

	changed := 0
	for i := range documents {
		d := &documents[i]
		next := statusForExpiry(d.ExpiresAt, now)
		if next == d.Status {
			continue
		}
		if err := s.documentRepo.UpdateStatus(ctx, d.ID, next); err != nil {
			slog.Warn("compliance sweep failed to update document",
				slog.Int64("document_id", d.ID),
				slog.String("error", err.Error()))
			continue
		}
		changed++
	}
	if changed > 0 {
		slog.Info("compliance expiry sweep finished", slog.Int("documents_updated", changed))
	}
	return changed, nil
}

func statusForExpiry(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil {
		return compliance.StatusValid
	}
	switch {
	case expiresAt.Before(now):
		return compliance.StatusExpired
	case expiresAt.Before(now.Add(expiryWarningWindow)):
		return compliance.StatusExpiring
	default:
		return compliance.StatusValid
	}
}

func (s *complianceServiceImpl) fileURL(d *compliance.Document) string {
	if d.FilePath == "" {
		return ""
	}
	return s.baseURL + "/" + d.FilePath
}
