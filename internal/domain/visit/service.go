package visit

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Visit, error)
	GetByID(ctx context.Context, id int64) (*Visit, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Visit, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Visit, error)

	SubmitFeedback(ctx context.Context, visitID, patientID int64, req FeedbackRequest) (*Feedback, error)
	GetFeedback(ctx context.Context, visitID int64) (*Feedback, error)
	StaffRating(ctx context.Context, staffID int64) (avg float64, count int64, err error)
}
