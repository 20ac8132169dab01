package visit

import "context"

type Repository interface {
	Create(ctx context.Context, v *Visit) error
	GetByID(ctx context.Context, id int64) (*Visit, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Visit, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Visit, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, f *Feedback) error
	GetByVisitID(ctx context.Context, visitID int64) (*Feedback, error)
	AverageRatingForStaff(ctx context.Context, staffID int64) (float64, int64, error)
}
