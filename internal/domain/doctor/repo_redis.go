package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/store"
)

const collection = "doctors"

// RepoRedis persists doctor profiles as JSON documents in the Redis store.
type RepoRedis struct {
	store *store.Store
}

func NewRepoRedis(s *store.Store) *RepoRedis {
	return &RepoRedis{store: s}
}

func (r *RepoRedis) Create(ctx context.Context, d *Doctor) error {
	return r.store.Put(ctx, collection, d.ID, d)
}

func (r *RepoRedis) GetByID(ctx context.Context, id string) (*Doctor, error) {
	var d Doctor
	if err := r.store.Get(ctx, collection, id, &d); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf("doctor %s", id)
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}

func (r *RepoRedis) Update(ctx context.Context, d *Doctor) error {
	return r.store.Put(ctx, collection, d.ID, d)
}

func (r *RepoRedis) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, collection, id)
}

func (r *RepoRedis) List(ctx context.Context) ([]*Doctor, error) {
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	var result []*Doctor
	for _, doc := range docs {
		var d Doctor
		if err := json.Unmarshal(doc, &d); err != nil {
			return nil, fmt.Errorf("decode doctor: %w", err)
		}
		result = append(result, &d)
	}
	return result, nil
}
