// Package reminder runs the background scan that notifies doctors and
// patients shortly before their confirmed appointments start.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Appointment is the slice of a booking the scheduler needs to send a
// reminder for it.
type Appointment struct {
	ID          string
	DoctorID    string
	PatientID   string
	DoctorName  string
	PatientName string
	Start       time.Time
}

// Source supplies the confirmed appointments starting inside a window.
type Source interface {
	ConfirmedBetween(ctx context.Context, from, until time.Time) ([]Appointment, error)
}

// Notifier delivers reminder notifications. The notification service
// satisfies it directly.
type Notifier interface {
	Notify(ctx context.Context, typ, title, message, recipientID, recipientType, relatedID, relatedType string) error
}

type Scheduler struct {
	source    Source
	notifier  Notifier
	logger    zerolog.Logger
	interval  time.Duration
	lookahead time.Duration

	mu       sync.Mutex
	cancel   context.CancelFunc
	running  bool
	reminded map[string]bool

	now func() time.Time
}

func NewScheduler(source Source, notifier Notifier, logger zerolog.Logger, interval, lookahead time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if lookahead <= 0 {
		lookahead = time.Hour
	}
	return &Scheduler{
		source:    source,
		notifier:  notifier,
		logger:    logger.With().Str("component", "reminder").Logger(),
		interval:  interval,
		lookahead: lookahead,
		reminded:  make(map[string]bool),
		now:       time.Now,
	}
}

// Start launches the periodic scan. Calling Start on a running scheduler is
// a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	go s.run(runCtx)
	s.logger.Info().
		Dur("interval", s.interval).
		Dur("lookahead", s.lookahead).
		Msg("reminder scheduler started")
}

// Stop halts the periodic scan. Calling Stop on a stopped scheduler is a
// no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cancel()
	s.cancel = nil
	s.running = false
	s.logger.Info().Msg("reminder scheduler stopped")
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(ctx context.Context) {
	s.scan(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

// scan sends one reminder per appointment whose start falls inside the
// lookahead window. Appointments are marked before sending so a delivery
// failure never turns into a repeat notification on the next tick.
func (s *Scheduler) scan(ctx context.Context) {
	now := s.now()
	appts, err := s.source.ConfirmedBetween(ctx, now, now.Add(s.lookahead))
	if err != nil {
		s.logger.Error().Err(err).Msg("reminder scan failed")
		return
	}

	for _, a := range appts {
		s.mu.Lock()
		seen := s.reminded[a.ID]
		if !seen {
			s.reminded[a.ID] = true
		}
		s.mu.Unlock()
		if seen {
			continue
		}

		when := a.Start.Format("15:04")
		doctorMsg := fmt.Sprintf("Appointment with %s at %s", a.PatientName, when)
		patientMsg := fmt.Sprintf("Appointment with %s at %s", a.DoctorName, when)

		if err := s.notifier.Notify(ctx, "info", "Upcoming appointment", doctorMsg, a.DoctorID, "doctor", a.ID, "booking"); err != nil {
			s.logger.Error().Err(err).Str("booking_id", a.ID).Msg("doctor reminder failed")
		}
		if err := s.notifier.Notify(ctx, "info", "Upcoming appointment", patientMsg, a.PatientID, "user", a.ID, "booking"); err != nil {
			s.logger.Error().Err(err).Str("booking_id", a.ID).Msg("patient reminder failed")
		}
	}
}
