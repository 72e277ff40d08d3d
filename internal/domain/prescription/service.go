package prescription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

// Bookings is the slice of the booking service the prescription flow needs:
// issuing a prescription completes the visit it belongs to.
type Bookings interface {
	MarkComplete(ctx context.Context, bookingID string) error
}

// Notifier receives prescription events. The notification service satisfies
// it directly.
type Notifier interface {
	Notify(ctx context.Context, typ, title, message, recipientID, recipientType, relatedID, relatedType string) error
}

type Service struct {
	repo     Repository
	bookings Bookings
	notifier Notifier
}

func NewService(repo Repository, bookings Bookings) *Service {
	return &Service{repo: repo, bookings: bookings}
}

// SetNotifier wires prescription notifications. Without one, events are
// skipped.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Create validates and stores a prescription, completing the booking it was
// written for. The booking is completed first so a prescription can never
// reference a booking that does not exist.
func (s *Service) Create(ctx context.Context, p *Prescription) error {
	if p.BookingID == "" {
		return apperr.Validationf("bookingId is required")
	}
	if p.DoctorID == "" {
		return apperr.Validationf("doctorId is required")
	}
	if p.PatientID == "" {
		return apperr.Validationf("patientId is required")
	}
	if len(p.Medicines) == 0 {
		return apperr.Validationf("at least one medicine is required")
	}
	for i, m := range p.Medicines {
		if m.Name == "" {
			return apperr.Validationf("medicine %d: name is required", i+1)
		}
	}

	if err := s.bookings.MarkComplete(ctx, p.BookingID); err != nil {
		return err
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create prescription: %w", err)
	}

	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, "info", "Prescription added",
			"Your doctor has added a prescription for your visit",
			p.PatientID, "user", p.ID, "prescription")
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Prescription, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}
