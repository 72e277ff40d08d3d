package prescription

import "context"

// Repository stores prescriptions.
type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id string) (*Prescription, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Prescription, error)
}
