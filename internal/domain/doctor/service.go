package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new doctor profile. New doctors start
// active with no rating.
func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return apperr.Validationf("name is required")
	}
	if d.Speciality == "" {
		return apperr.Validationf("speciality is required")
	}
	if d.Fee < 0 {
		return apperr.Validationf("fee must not be negative")
	}

	d.ID = uuid.NewString()
	d.Rating = 0
	d.RatingCount = 0
	d.Active = true
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.repo.Create(ctx, d); err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the editable profile fields. Rating fields are managed by
// the feedback flow and cannot be set here.
func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return apperr.Validationf("name is required")
	}
	if d.Speciality == "" {
		return apperr.Validationf("speciality is required")
	}

	existing, err := s.repo.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	d.Rating = existing.Rating
	d.RatingCount = existing.RatingCount
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, d); err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}

// Deactivate hides the doctor from the directory without deleting history.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	d.Active = false
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if !ok {
		return apperr.NotFoundf("doctor %s", id)
	}
	return nil
}

// Search filters the directory by speciality and/or a case-insensitive name
// substring. Inactive doctors are only included when activeOnly is false.
func (s *Service) Search(ctx context.Context, speciality, name string, activeOnly bool) ([]*Doctor, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var result []*Doctor
	for _, d := range all {
		if activeOnly && !d.Active {
			continue
		}
		if speciality != "" && !strings.EqualFold(d.Speciality, speciality) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(name)) {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

// UpdateRating refreshes the aggregate rating, called by the feedback flow.
func (s *Service) UpdateRating(ctx context.Context, id string, average float64, count int) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	d.Rating = average
	d.RatingCount = count
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return fmt.Errorf("update doctor rating: %w", err)
	}
	return nil
}
