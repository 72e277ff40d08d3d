package prescription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/store"
)

const collection = "prescriptions"

// RepoRedis persists prescriptions as JSON documents in the Redis store.
type RepoRedis struct {
	store *store.Store
}

func NewRepoRedis(s *store.Store) *RepoRedis {
	return &RepoRedis{store: s}
}

func (r *RepoRedis) Create(ctx context.Context, p *Prescription) error {
	return r.store.Put(ctx, collection, p.ID, p)
}

func (r *RepoRedis) GetByID(ctx context.Context, id string) (*Prescription, error) {
	var p Prescription
	if err := r.store.Get(ctx, collection, id, &p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf("prescription %s", id)
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	return &p, nil
}

func (r *RepoRedis) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	return r.list(ctx, func(p *Prescription) bool { return p.PatientID == patientID })
}

func (r *RepoRedis) ListByDoctor(ctx context.Context, doctorID string) ([]*Prescription, error) {
	return r.list(ctx, func(p *Prescription) bool { return p.DoctorID == doctorID })
}

func (r *RepoRedis) list(ctx context.Context, keep func(*Prescription) bool) ([]*Prescription, error) {
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}

	var result []*Prescription
	for _, doc := range docs {
		var p Prescription
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode prescription: %w", err)
		}
		if keep(&p) {
			result = append(result, &p)
		}
	}
	return result, nil
}
