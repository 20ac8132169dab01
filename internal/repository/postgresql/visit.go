package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/visit"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type visitRepositoryImpl struct {
	db *database.DB
}

func NewVisitRepository(db *database.DB) visit.Repository {
	return &visitRepositoryImpl{db: db}
}

const visitColumns = `id, request_id, staff_id, patient_id, started_at, ended_at, summary, created_at`

func scanVisit(row pgx.Row) (*visit.Visit, error) {
	var v visit.Visit
	err := row.Scan(&v.ID, &v.RequestID, &v.StaffID, &v.PatientID, &v.StartedAt, &v.EndedAt, &v.Summary, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *visitRepositoryImpl) Create(ctx context.Context, v *visit.Visit) error {
	query := `
		INSERT INTO visits (request_id, staff_id, patient_id, started_at, ended_at, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		v.RequestID, v.StaffID, v.PatientID, v.StartedAt, v.EndedAt, v.Summary).
		Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

func (r *visitRepositoryImpl) GetByID(ctx context.Context, id int64) (*visit.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`

	v, err := scanVisit(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, visit.ErrVisitNotFound
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return v, nil
}

func (r *visitRepositoryImpl) ListByStaff(ctx context.Context, staffID int64) ([]visit.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE staff_id = $1 ORDER BY started_at DESC`
	return r.list(ctx, query, staffID)
}

func (r *visitRepositoryImpl) ListByPatient(ctx context.Context, patientID int64) ([]visit.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE patient_id = $1 ORDER BY started_at DESC`
	return r.list(ctx, query, patientID)
}

func (r *visitRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]visit.Visit, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, *v)
	}
	return visits, rows.Err()
}

type feedbackRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) visit.FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

func (r *feedbackRepositoryImpl) Create(ctx context.Context, f *visit.Feedback) error {
	query := `
		INSERT INTO visit_feedback (visit_id, patient_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		f.VisitID, f.PatientID, f.Rating, f.Comment).
		Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepositoryImpl) GetByVisitID(ctx context.Context, visitID int64) (*visit.Feedback, error) {
	query := `
		SELECT id, visit_id, patient_id, rating, comment, created_at
		FROM visit_feedback WHERE visit_id = $1`

	var f visit.Feedback
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, visitID).
		Scan(&f.ID, &f.VisitID, &f.PatientID, &f.Rating, &f.Comment, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, visit.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return &f, nil
}

func (r *feedbackRepositoryImpl) AverageRatingForStaff(ctx context.Context, staffID int64) (float64, int64, error) {
	query := `
		SELECT COALESCE(AVG(f.rating), 0), COUNT(f.id)
		FROM visit_feedback f
		JOIN visits v ON v.id = f.visit_id
		WHERE v.staff_id = $1`

	var avg float64
	var count int64
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, staffID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate staff rating: %w", err)
	}
	return avg, count, nil
}
