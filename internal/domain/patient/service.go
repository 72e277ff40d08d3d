package patient

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

func validateAccount(p *Patient) error {
	if p.Name == "" {
		return apperr.Validationf("name is required")
	}
	if p.Email == "" {
		return apperr.Validationf("email is required")
	}
	if !strings.Contains(p.Email, "@") {
		return apperr.Validationf("email is not valid")
	}
	if p.Age < 0 {
		return apperr.Validationf("age must not be negative")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validateAccount(p); err != nil {
		return err
	}

	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validateAccount(p); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}
