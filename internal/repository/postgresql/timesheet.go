package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/timesheet"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.Repository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `id, staff_id, shift_id, pay_period_start, pay_period_end, hours_worked,
	status, submitted_at, verified_at, verified_by, notes, created_at, updated_at`

func scanTimesheet(row pgx.Row) (*timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(&t.ID, &t.StaffID, &t.ShiftID, &t.PayPeriodStart, &t.PayPeriodEnd,
		&t.HoursWorked, &t.Status, &t.SubmittedAt, &t.VerifiedAt, &t.VerifiedBy,
		&t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *timesheetRepositoryImpl) Create(ctx context.Context, t *timesheet.Timesheet) error {
	query := `
		INSERT INTO timesheets (staff_id, shift_id, pay_period_start, pay_period_end,
			hours_worked, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		t.StaffID, t.ShiftID, t.PayPeriodStart, t.PayPeriodEnd, t.HoursWorked, t.Status, t.Notes).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create timesheet: %w", err)
	}
	return nil
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id int64) (*timesheet.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE id = $1`

	t, err := scanTimesheet(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrTimesheetNotFound
		}
		return nil, fmt.Errorf("failed to get timesheet: %w", err)
	}
	return t, nil
}

func (r *timesheetRepositoryImpl) ListByStaff(ctx context.Context, staffID int64) ([]timesheet.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE staff_id = $1 ORDER BY pay_period_start DESC`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, *t)
	}
	return timesheets, rows.Err()
}

func (r *timesheetRepositoryImpl) FindVerifiedInPeriod(ctx context.Context, staffID int64, periodStart, periodEnd time.Time) (*timesheet.Timesheet, error) {
	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE staff_id = $1 AND status = $2
		  AND pay_period_start >= $3 AND pay_period_start <= $4
		ORDER BY pay_period_start DESC
		LIMIT 1`

	t, err := scanTimesheet(GetQuerier(ctx, r.db).QueryRow(ctx, query,
		staffID, timesheet.StatusVerified, periodStart, periodEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrTimesheetNotFound
		}
		return nil, fmt.Errorf("failed to find verified timesheet: %w", err)
	}
	return t, nil
}

func (r *timesheetRepositoryImpl) Update(ctx context.Context, t *timesheet.Timesheet) error {
	query := `
		UPDATE timesheets
		SET hours_worked = $2, status = $3, submitted_at = $4, verified_at = $5,
			verified_by = $6, notes = $7, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		t.ID, t.HoursWorked, t.Status, t.SubmittedAt, t.VerifiedAt, t.VerifiedBy, t.Notes)
	if err != nil {
		return fmt.Errorf("failed to update timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}
