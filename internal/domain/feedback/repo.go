package feedback

import "context"

// Repository stores feedback entries.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id string) (*Feedback, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Feedback, error)
}
