package compliance

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresync/staffing-backend-go/internal/domain/compliance"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
)

var errNotFound = errors.New("not found")

type fakeDocumentRepo struct {
	createFn             func(ctx context.Context, d *compliance.Document) error
	getByIDFn            func(ctx context.Context, id int64) (*compliance.Document, error)
	listExpiringBeforeFn func(ctx context.Context, cutoff time.Time) ([]compliance.Document, error)
	updateFn             func(ctx context.Context, d *compliance.Document) error
	updateStatusFn       func(ctx context.Context, id int64, status string) error
}

func (f *fakeDocumentRepo) Create(ctx context.Context, d *compliance.Document) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, d)
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id int64) (*compliance.Document, error) {
	if f.getByIDFn == nil {
		return nil, errNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeDocumentRepo) ListByStaff(ctx context.Context, staffID int64) ([]compliance.Document, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]compliance.Document, error) {
	if f.listExpiringBeforeFn == nil {
		return nil, nil
	}
	return f.listExpiringBeforeFn(ctx, cutoff)
}

func (f *fakeDocumentRepo) Update(ctx context.Context, d *compliance.Document) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, d)
}

func (f *fakeDocumentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if f.updateStatusFn == nil {
		return nil
	}
	return f.updateStatusFn(ctx, id, status)
}

type fakeStaffRepo struct{}

func (f *fakeStaffRepo) Create(ctx context.Context, s *staff.Staff) error { return nil }
func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*staff.Staff, error) {
	return &staff.Staff{ID: id}, nil
}
func (f *fakeStaffRepo) GetByUserID(ctx context.Context, userID int64) (*staff.Staff, error) {
	return nil, errNotFound
}
func (f *fakeStaffRepo) ListByCompany(ctx context.Context, companyID int64) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) ListAvailable(ctx context.Context, companyID int64, specialization string) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) Update(ctx context.Context, s *staff.Staff) error { return nil }

type memoryStorage struct {
	files map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: map[string][]byte{}}
}

func (m *memoryStorage) Save(ctx context.Context, path string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	m.files[path] = data
	return "http://localhost/" + path, nil
}

func (m *memoryStorage) Read(ctx context.Context, path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, errNotFound
	}
	return data, nil
}

func (m *memoryStorage) Delete(ctx context.Context, path string) error {
	delete(m.files, path)
	return nil
}

func (m *memoryStorage) Exists(ctx context.Context, path string) bool {
	_, ok := m.files[path]
	return ok
}

func dateIn(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func newService(repo *fakeDocumentRepo, store *memoryStorage) compliance.Service {
	return NewComplianceService(repo, &fakeStaffRepo{}, store, "http://localhost:8080/uploads")
}

func TestCreate_SetsStatusFromExpiry(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt string
		want      string
	}{
		{"no expiry", "", compliance.StatusValid},
		{"expires next year", dateIn(365), compliance.StatusValid},
		{"expires within warning window", dateIn(10), compliance.StatusExpiring},
		{"already expired", dateIn(-1), compliance.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *compliance.Document
			repo := &fakeDocumentRepo{
				createFn: func(_ context.Context, d *compliance.Document) error {
					d.ID = 1
					created = d
					return nil
				},
			}

			svc := newService(repo, newMemoryStorage())
			result, err := svc.Create(context.Background(), compliance.CreateRequest{
				StaffID:      3,
				DocumentType: "license",
				Title:        "RN License",
				ExpiresAt:    tt.expiresAt,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, created.Status)
			assert.Equal(t, tt.want, result.Status)
		})
	}
}

func TestAttachFileAndReadFile(t *testing.T) {
	doc := &compliance.Document{ID: 5, StaffID: 3, Status: compliance.StatusValid}
	repo := &fakeDocumentRepo{
		getByIDFn: func(_ context.Context, _ int64) (*compliance.Document, error) {
			return doc, nil
		},
		updateFn: func(_ context.Context, d *compliance.Document) error {
			doc = d
			return nil
		},
	}
	store := newMemoryStorage()

	svc := newService(repo, store)
	result, err := svc.AttachFile(context.Background(), 5, "license.pdf", bytes.NewReader([]byte("pdf-bytes")))
	require.NoError(t, err)

	assert.Equal(t, "compliance/5/license.pdf", doc.FilePath)
	assert.Equal(t, "http://localhost:8080/uploads/compliance/5/license.pdf", result.FileURL)

	content, filename, err := svc.ReadFile(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), content)
	assert.Equal(t, "license.pdf", filename)
}

func TestReadFile_NoFileAttached(t *testing.T) {
	repo := &fakeDocumentRepo{
		getByIDFn: func(_ context.Context, id int64) (*compliance.Document, error) {
			return &compliance.Document{ID: id, Status: compliance.StatusValid}, nil
		},
	}

	svc := newService(repo, newMemoryStorage())
	_, _, err := svc.ReadFile(context.Background(), 5)
	assert.ErrorIs(t, err, compliance.ErrNoFileAttached)
}

func TestSweepExpiry_UpdatesChangedStatusesOnly(t *testing.T) {
	past := time.Now().AddDate(0, 0, -2)
	soon := time.Now().AddDate(0, 0, 5)

	updated := map[int64]string{}
	repo := &fakeDocumentRepo{
		listExpiringBeforeFn: func(_ context.Context, _ time.Time) ([]compliance.Document, error) {
			return []compliance.Document{
				{ID: 1, ExpiresAt: &past, Status: compliance.StatusExpiring}, // lapsed since last sweep
				{ID: 2, ExpiresAt: &soon, Status: compliance.StatusValid},    // entering the warning window
				{ID: 3, ExpiresAt: &soon, Status: compliance.StatusExpiring}, // already flagged, no change
			}, nil
		},
		updateStatusFn: func(_ context.Context, id int64, status string) error {
			updated[id] = status
			return nil
		},
	}

	svc := newService(repo, newMemoryStorage())
	changed, err := svc.SweepExpiry(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, changed)
	assert.Equal(t, compliance.StatusExpired, updated[1])
	assert.Equal(t, compliance.StatusExpiring, updated[2])
	assert.NotContains(t, updated, int64(3))
}

func TestSweepExpiry_KeepsGoingAfterUpdateFailure(t *testing.T) {
	past := time.Now().AddDate(0, 0, -2)

	repo := &fakeDocumentRepo{
		listExpiringBeforeFn: func(_ context.Context, _ time.Time) ([]compliance.Document, error) {
			return []compliance.Document{
				{ID: 1, ExpiresAt: &past, Status: compliance.StatusValid},
				{ID: 2, ExpiresAt: &past, Status: compliance.StatusValid},
			}, nil
		},
		updateStatusFn: func(_ context.Context, id int64, _ string) error {
			if id == 1 {
				return errors.New("write failed")
			}
			return nil
		},
	}

	svc := newService(repo, newMemoryStorage())
	changed, err := svc.SweepExpiry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
}
