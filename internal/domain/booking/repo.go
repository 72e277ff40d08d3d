package booking

import "context"

// Repository stores bookings. List methods return bookings in insertion
// order.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
	List(ctx context.Context) ([]*Booking, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Booking, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Booking, error)
}
