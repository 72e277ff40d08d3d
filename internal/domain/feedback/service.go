package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

// DoctorRatings receives recomputed rating aggregates. The doctor service
// satisfies it via an adapter.
type DoctorRatings interface {
	UpdateRating(ctx context.Context, doctorID string, average float64, count int) error
}

type Service struct {
	repo    Repository
	ratings DoctorRatings
}

func NewService(repo Repository, ratings DoctorRatings) *Service {
	return &Service{repo: repo, ratings: ratings}
}

// Create validates and stores a feedback entry, then pushes the doctor's
// recomputed average onto their profile.
func (s *Service) Create(ctx context.Context, f *Feedback) error {
	if f.DoctorID == "" {
		return apperr.Validationf("doctorId is required")
	}
	if f.PatientID == "" {
		return apperr.Validationf("patientId is required")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return apperr.Validationf("rating must be between 1 and 5")
	}

	f.ID = uuid.NewString()
	f.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, f); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}

	avg, count, err := s.AverageRating(ctx, f.DoctorID)
	if err != nil {
		return err
	}
	if s.ratings != nil {
		if err := s.ratings.UpdateRating(ctx, f.DoctorID, avg, count); err != nil {
			return fmt.Errorf("update doctor rating: %w", err)
		}
	}
	return nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Feedback, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// AverageRating returns the doctor's mean rating and the number of entries
// it was computed from. Zero entries yields a zero average.
func (s *Service) AverageRating(ctx context.Context, doctorID string) (float64, int, error) {
	items, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return 0, 0, err
	}
	if len(items) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, f := range items {
		sum += f.Rating
	}
	return float64(sum) / float64(len(items)), len(items), nil
}
