package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/patient"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type patientRepositoryImpl struct {
	db *database.DB
}

func NewPatientRepository(db *database.DB) patient.Repository {
	return &patientRepositoryImpl{db: db}
}

const patientColumns = `id, user_id, company_id, date_of_birth, address, latitude, longitude,
	medical_notes, emergency_contact, is_active, created_at, updated_at`

func scanPatient(row pgx.Row) (*patient.Patient, error) {
	var p patient.Patient
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyID, &p.DateOfBirth, &p.Address,
		&p.Latitude, &p.Longitude, &p.MedicalNotes, &p.EmergencyContact, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepositoryImpl) Create(ctx context.Context, p *patient.Patient) error {
	query := `
		INSERT INTO patients (user_id, company_id, date_of_birth, address, latitude, longitude,
			medical_notes, emergency_contact, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		p.UserID, p.CompanyID, p.DateOfBirth, p.Address, p.Latitude, p.Longitude,
		p.MedicalNotes, p.EmergencyContact, p.IsActive).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepositoryImpl) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	p, err := scanPatient(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, patient.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return p, nil
}

func (r *patientRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (*patient.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE user_id = $1`

	p, err := scanPatient(GetQuerier(ctx, r.db).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, patient.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient by user: %w", err)
	}
	return p, nil
}

func (r *patientRepositoryImpl) ListByCompany(ctx context.Context, companyID int64) ([]patient.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE company_id = $1 ORDER BY id`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var patients []patient.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, *p)
	}
	return patients, rows.Err()
}

func (r *patientRepositoryImpl) Update(ctx context.Context, p *patient.Patient) error {
	query := `
		UPDATE patients
		SET address = $2, latitude = $3, longitude = $4, medical_notes = $5,
			emergency_contact = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		p.ID, p.Address, p.Latitude, p.Longitude, p.MedicalNotes, p.EmergencyContact, p.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return patient.ErrPatientNotFound
	}
	return nil
}
