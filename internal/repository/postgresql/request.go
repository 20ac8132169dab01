package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/request"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.Repository {
	return &requestRepositoryImpl{db: db}
}

const requestColumns = `id, patient_id, company_id, service_type, description, start_time, end_time,
	status, required_skills, created_at, updated_at`

func scanRequest(row pgx.Row) (*request.ServiceRequest, error) {
	var sr request.ServiceRequest
	err := row.Scan(&sr.ID, &sr.PatientID, &sr.CompanyID, &sr.ServiceType, &sr.Description,
		&sr.StartTime, &sr.EndTime, &sr.Status, &sr.RequiredSkills, &sr.CreatedAt, &sr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sr, nil
}

func (r *requestRepositoryImpl) Create(ctx context.Context, sr *request.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (patient_id, company_id, service_type, description,
			start_time, end_time, status, required_skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		sr.PatientID, sr.CompanyID, sr.ServiceType, sr.Description,
		sr.StartTime, sr.EndTime, sr.Status, sr.RequiredSkills).
		Scan(&sr.ID, &sr.CreatedAt, &sr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}
	return nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id int64) (*request.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE id = $1`

	sr, err := scanRequest(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, request.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}
	return sr, nil
}

func (r *requestRepositoryImpl) ListByCompany(ctx context.Context, companyID int64, status string) ([]request.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY start_time DESC`

	return r.list(ctx, query, args...)
}

func (r *requestRepositoryImpl) ListByPatient(ctx context.Context, patientID int64) ([]request.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE patient_id = $1 ORDER BY start_time DESC`
	return r.list(ctx, query, patientID)
}

func (r *requestRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]request.ServiceRequest, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	defer rows.Close()

	var requests []request.ServiceRequest
	for rows.Next() {
		sr, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service request: %w", err)
		}
		requests = append(requests, *sr)
	}
	return requests, rows.Err()
}

func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx,
		`UPDATE service_requests SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update service request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) request.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, a *request.Assignment) error {
	query := `
		INSERT INTO assignments (request_id, staff_id, assigned_by, assigned_at, notes)
		VALUES ($1, $2, $3, NOW(), $4)
		RETURNING id, assigned_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		a.RequestID, a.StaffID, a.AssignedBy, a.Notes).
		Scan(&a.ID, &a.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *assignmentRepositoryImpl) GetByRequestID(ctx context.Context, requestID int64) (*request.Assignment, error) {
	query := `
		SELECT id, request_id, staff_id, assigned_by, assigned_at, accepted_at, notes
		FROM assignments WHERE request_id = $1`

	var a request.Assignment
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, requestID).
		Scan(&a.ID, &a.RequestID, &a.StaffID, &a.AssignedBy, &a.AssignedAt, &a.AcceptedAt, &a.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, request.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &a, nil
}

func (r *assignmentRepositoryImpl) ListByStaff(ctx context.Context, staffID int64) ([]request.Assignment, error) {
	query := `
		SELECT id, request_id, staff_id, assigned_by, assigned_at, accepted_at, notes
		FROM assignments WHERE staff_id = $1 ORDER BY assigned_at DESC`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []request.Assignment
	for rows.Next() {
		var a request.Assignment
		if err := rows.Scan(&a.ID, &a.RequestID, &a.StaffID, &a.AssignedBy, &a.AssignedAt, &a.AcceptedAt, &a.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepositoryImpl) MarkAccepted(ctx context.Context, id int64) error {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx,
		`UPDATE assignments SET accepted_at = NOW() WHERE id = $1 AND accepted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to mark assignment accepted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrAssignmentNotFound
	}
	return nil
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrAssignmentNotFound
	}
	return nil
}
