package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/payroll"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `id, staff_id, company_id, country_id, timesheet_id, pay_period_start, pay_period_end,
	hours_worked, hourly_rate, gross_pay, federal_tax, state_provincial_tax, social_security_tax,
	medicare_tax, other_deductions, total_deductions, net_pay, breakdown, status, approved_at, paid_at, created_at`

func scanPayroll(row pgx.Row) (*payroll.Payroll, error) {
	var p payroll.Payroll
	var breakdown []byte
	err := row.Scan(&p.ID, &p.StaffID, &p.CompanyID, &p.CountryID, &p.TimesheetID,
		&p.PayPeriodStart, &p.PayPeriodEnd, &p.HoursWorked, &p.HourlyRate, &p.GrossPay,
		&p.FederalTax, &p.StateProvincialTax, &p.SocialSecurityTax, &p.MedicareTax,
		&p.OtherDeductions, &p.TotalDeductions, &p.NetPay, &breakdown, &p.Status,
		&p.ApprovedAt, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &p.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to decode payroll breakdown: %w", err)
		}
	}
	return &p, nil
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, p *payroll.Payroll) error {
	breakdown, err := json.Marshal(p.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode payroll breakdown: %w", err)
	}

	query := `
		INSERT INTO payrolls (staff_id, company_id, country_id, timesheet_id, pay_period_start,
			pay_period_end, hours_worked, hourly_rate, gross_pay, federal_tax, state_provincial_tax,
			social_security_tax, medicare_tax, other_deductions, total_deductions, net_pay,
			breakdown, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW())
		RETURNING id, created_at`

	err = GetQuerier(ctx, r.db).QueryRow(ctx, query,
		p.StaffID, p.CompanyID, p.CountryID, p.TimesheetID, p.PayPeriodStart, p.PayPeriodEnd,
		p.HoursWorked, p.HourlyRate, p.GrossPay, p.FederalTax, p.StateProvincialTax,
		p.SocialSecurityTax, p.MedicareTax, p.OtherDeductions, p.TotalDeductions, p.NetPay,
		breakdown, p.Status).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payroll: %w", err)
	}
	return nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id int64) (*payroll.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE id = $1`

	p, err := scanPayroll(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("failed to get payroll: %w", err)
	}
	return p, nil
}

func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE 1=1`
	args := []any{}

	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		query += fmt.Sprintf(` AND staff_id = $%d`, len(args))
	}
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		query += fmt.Sprintf(` AND company_id = $%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	query += ` ORDER BY pay_period_start DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, *p)
	}
	return payrolls, rows.Err()
}

func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status string, at time.Time) error {
	var query string
	switch status {
	case payroll.StatusApproved:
		query = `UPDATE payrolls SET status = $2, approved_at = $3 WHERE id = $1`
	case payroll.StatusPaid:
		query = `UPDATE payrolls SET status = $2, paid_at = $3 WHERE id = $1`
	default:
		query = `UPDATE payrolls SET status = $2 WHERE id = $1`
		tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id, status)
		if err != nil {
			return fmt.Errorf("failed to update payroll status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return payroll.ErrPayrollNotFound
		}
		return nil
	}

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id, status, at)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// SumGrossPayForYear returns the YTD gross as a string so the caller
// can parse it into a decimal without precision loss.
func (r *payrollRepositoryImpl) SumGrossPayForYear(ctx context.Context, staffID int64, before time.Time) (string, error) {
	query := `
		SELECT COALESCE(SUM(gross_pay), 0)::text
		FROM payrolls
		WHERE staff_id = $1
		  AND date_part('year', pay_period_start) = date_part('year', $2::timestamptz)
		  AND pay_period_start < $2`

	var sum string
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, staffID, before).Scan(&sum)
	if err != nil {
		return "", fmt.Errorf("failed to sum ytd gross pay: %w", err)
	}
	return sum, nil
}
