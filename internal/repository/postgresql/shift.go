package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/shift"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, staff_id, request_id, scheduled_start, scheduled_end, actual_start,
	actual_end, status, notes, created_at, updated_at`

func scanShift(row pgx.Row) (*shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(&s.ID, &s.StaffID, &s.RequestID, &s.ScheduledStart, &s.ScheduledEnd,
		&s.ActualStart, &s.ActualEnd, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s *shift.Shift) error {
	query := `
		INSERT INTO shifts (staff_id, request_id, scheduled_start, scheduled_end, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		s.StaffID, s.RequestID, s.ScheduledStart, s.ScheduledEnd, s.Status, s.Notes).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id int64) (*shift.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

func (r *shiftRepositoryImpl) ListByStaff(ctx context.Context, staffID int64, from, to time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE staff_id = $1 AND scheduled_start >= $2 AND scheduled_start < $3
		ORDER BY scheduled_start`

	return r.list(ctx, query, staffID, from, to)
}

func (r *shiftRepositoryImpl) FindOverlapping(ctx context.Context, staffID int64, start, end time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE staff_id = $1 AND scheduled_start < $3 AND scheduled_end > $2`

	return r.list(ctx, query, staffID, start, end)
}

func (r *shiftRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]shift.Shift, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, *s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s *shift.Shift) error {
	query := `
		UPDATE shifts
		SET actual_start = $2, actual_end = $3, status = $4, notes = $5, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		s.ID, s.ActualStart, s.ActualEnd, s.Status, s.Notes)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
