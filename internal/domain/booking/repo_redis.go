package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/store"
)

const collection = "bookings"

// RepoRedis persists bookings as JSON documents in the Redis store.
type RepoRedis struct {
	store *store.Store
}

func NewRepoRedis(s *store.Store) *RepoRedis {
	return &RepoRedis{store: s}
}

func (r *RepoRedis) Create(ctx context.Context, b *Booking) error {
	return r.store.Put(ctx, collection, b.ID, b)
}

func (r *RepoRedis) GetByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := r.store.Get(ctx, collection, id, &b); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf("booking %s", id)
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *RepoRedis) Update(ctx context.Context, b *Booking) error {
	return r.store.Put(ctx, collection, b.ID, b)
}

func (r *RepoRedis) List(ctx context.Context) ([]*Booking, error) {
	return r.list(ctx, func(*Booking) bool { return true })
}

func (r *RepoRedis) ListByPatient(ctx context.Context, patientID string) ([]*Booking, error) {
	return r.list(ctx, func(b *Booking) bool { return b.PatientID == patientID })
}

func (r *RepoRedis) ListByDoctor(ctx context.Context, doctorID string) ([]*Booking, error) {
	return r.list(ctx, func(b *Booking) bool { return b.DoctorID == doctorID })
}

func (r *RepoRedis) list(ctx context.Context, keep func(*Booking) bool) ([]*Booking, error) {
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	var result []*Booking
	for _, doc := range docs {
		var b Booking
		if err := json.Unmarshal(doc, &b); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		if keep(&b) {
			result = append(result, &b)
		}
	}
	return result, nil
}
