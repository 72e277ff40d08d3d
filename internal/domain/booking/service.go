package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

var validStatuses = map[string]bool{
	StatusConfirmed: true, StatusCompleted: true, StatusCancelled: true,
}

var validPaymentStatuses = map[string]bool{
	PaymentPaid: true, PaymentNotPaid: true,
}

// Notifier receives booking lifecycle events. The notification service
// satisfies it directly.
type Notifier interface {
	Notify(ctx context.Context, typ, title, message, recipientID, recipientType, relatedID, relatedType string) error
}

type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetNotifier wires booking lifecycle notifications. Without one, events are
// skipped.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

func validateDate(date string) error {
	if date == "" {
		return apperr.Validationf("date is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperr.Validationf("date must be in YYYY-MM-DD format")
	}
	return nil
}

func validateTime(t string) error {
	if t == "" {
		return apperr.Validationf("time is required")
	}
	if _, err := time.Parse(timeLayout, t); err != nil {
		return apperr.Validationf("time must be in HH:MM format")
	}
	return nil
}

// Create validates and stores a new booking. The ID and timestamps are
// assigned server-side; status defaults to confirmed. No slot-conflict check
// is performed: two bookings may share a doctor, date, and time.
func (s *Service) Create(ctx context.Context, b *Booking) error {
	if b.DoctorID == "" {
		return apperr.Validationf("doctorId is required")
	}
	if b.PatientID == "" {
		return apperr.Validationf("patientId is required")
	}
	if b.PatientName == "" {
		return apperr.Validationf("patientName is required")
	}
	if err := validateDate(b.Date); err != nil {
		return err
	}
	if err := validateTime(b.Time); err != nil {
		return err
	}
	if b.Status == "" {
		b.Status = StatusConfirmed
	}
	if !validStatuses[b.Status] {
		return apperr.Validationf("invalid booking status: %s", b.Status)
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentNotPaid
	}
	if !validPaymentStatuses[b.PaymentStatus] {
		return apperr.Validationf("invalid payment status: %s", b.PaymentStatus)
	}

	b.ID = uuid.NewString()
	now := s.now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.repo.Create(ctx, b); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	when := b.Date + " " + b.Time
	s.notifyBoth(ctx, b, "success", "Appointment booked",
		fmt.Sprintf("New appointment with %s on %s", b.PatientName, when),
		fmt.Sprintf("Your appointment with %s on %s is confirmed", b.DoctorName, when))
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByPatient returns the patient's bookings with their classification,
// optionally filtered to one classification bucket.
func (s *Service) ListByPatient(ctx context.Context, patientID, class string) ([]View, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.classifyAll(items, class), nil
}

// ListByDoctor returns the doctor's bookings with their classification,
// optionally filtered to one classification bucket.
func (s *Service) ListByDoctor(ctx context.Context, doctorID, class string) ([]View, error) {
	items, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return s.classifyAll(items, class), nil
}

func (s *Service) classifyAll(items []*Booking, class string) []View {
	now := s.now()
	views := make([]View, 0, len(items))
	for _, b := range items {
		v := View{Booking: b, Classification: Classify(b, now)}
		if class != "" && v.Classification != class {
			continue
		}
		views = append(views, v)
	}
	return views
}

// Cancel marks a booking cancelled. Cancelling an already-cancelled booking
// is a no-op; completed bookings cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusCancelled {
		return b, nil
	}
	if b.Status == StatusCompleted {
		return nil, apperr.Validationf("completed booking cannot be cancelled")
	}

	b.Status = StatusCancelled
	b.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	when := b.Date + " " + b.Time
	s.notifyBoth(ctx, b, "warning", "Appointment cancelled",
		fmt.Sprintf("Appointment with %s on %s was cancelled", b.PatientName, when),
		fmt.Sprintf("Your appointment with %s on %s was cancelled", b.DoctorName, when))
	return b, nil
}

// Reschedule moves a confirmed booking to a new date and time. The new slot
// is not checked for conflicts with other bookings.
func (s *Service) Reschedule(ctx context.Context, id, newDate, newTime string) (*Booking, error) {
	if err := validateDate(newDate); err != nil {
		return nil, err
	}
	if err := validateTime(newTime); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusConfirmed {
		return nil, apperr.Validationf("only confirmed bookings can be rescheduled")
	}

	b.Date = newDate
	b.Time = newTime
	b.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	when := newDate + " " + newTime
	s.notifyBoth(ctx, b, "info", "Appointment rescheduled",
		fmt.Sprintf("Appointment with %s moved to %s", b.PatientName, when),
		fmt.Sprintf("Your appointment with %s moved to %s", b.DoctorName, when))
	return b, nil
}

// MarkComplete marks a booking completed, typically when a prescription is
// issued for it. Completing a completed booking is a no-op; cancelled
// bookings cannot be completed.
func (s *Service) MarkComplete(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusCompleted {
		return b, nil
	}
	if b.Status == StatusCancelled {
		return nil, apperr.Validationf("cancelled booking cannot be completed")
	}

	b.Status = StatusCompleted
	b.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return b, nil
}

// UpdateNotes replaces the free-text notes on a booking.
func (s *Service) UpdateNotes(ctx context.Context, id, notes string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Notes = notes
	b.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return b, nil
}

// UpdatePatientDetails attaches intake details to a booking.
func (s *Service) UpdatePatientDetails(ctx context.Context, id string, details *PatientDetails) (*Booking, error) {
	if details == nil {
		return nil, apperr.Validationf("patient details are required")
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.PatientDetails = details
	b.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return b, nil
}

// RecordPayment marks a booking paid and stores the card metadata. Paying an
// already-paid booking is rejected.
func (s *Service) RecordPayment(ctx context.Context, id string, details *PaymentDetails) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == PaymentPaid {
		return nil, apperr.Validationf("booking is already paid")
	}

	b.PaymentStatus = PaymentPaid
	b.PaymentDetails = details
	b.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.notifyBoth(ctx, b, "success", "Payment received",
		fmt.Sprintf("Payment received for appointment with %s", b.PatientName),
		fmt.Sprintf("Your payment for the appointment with %s was recorded", b.DoctorName))
	return b, nil
}

// ListConfirmedBetween returns confirmed bookings whose start time falls
// inside [from, until]. Bookings with unparsable dates are skipped.
func (s *Service) ListConfirmedBetween(ctx context.Context, from, until time.Time) ([]*Booking, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var result []*Booking
	for _, b := range all {
		if b.Status != StatusConfirmed {
			continue
		}
		start, ok := b.StartTime()
		if !ok {
			continue
		}
		if start.Before(from) || start.After(until) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

// notifyBoth sends a lifecycle event to the booking's doctor and patient.
// Notification failures are not fatal to the booking operation.
func (s *Service) notifyBoth(ctx context.Context, b *Booking, typ, title, doctorMsg, patientMsg string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Notify(ctx, typ, title, doctorMsg, b.DoctorID, "doctor", b.ID, "booking")
	_ = s.notifier.Notify(ctx, typ, title, patientMsg, b.PatientID, "user", b.ID, "booking")
}
