package patient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/store"
)

const collection = "users"

// RepoRedis persists patient accounts as JSON documents in the Redis store.
// The collection is named "users" because patients authenticate as plain
// users of the application.
type RepoRedis struct {
	store *store.Store
}

func NewRepoRedis(s *store.Store) *RepoRedis {
	return &RepoRedis{store: s}
}

func (r *RepoRedis) Create(ctx context.Context, p *Patient) error {
	return r.store.Put(ctx, collection, p.ID, p)
}

func (r *RepoRedis) GetByID(ctx context.Context, id string) (*Patient, error) {
	var p Patient
	if err := r.store.Get(ctx, collection, id, &p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf("patient %s", id)
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &p, nil
}

func (r *RepoRedis) Update(ctx context.Context, p *Patient) error {
	return r.store.Put(ctx, collection, p.ID, p)
}

func (r *RepoRedis) List(ctx context.Context) ([]*Patient, error) {
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	var result []*Patient
	for _, doc := range docs {
		var p Patient
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode patient: %w", err)
		}
		result = append(result, &p)
	}
	return result, nil
}
