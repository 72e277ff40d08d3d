package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/store"
)

const collection = "feedbacks"

// RepoRedis persists feedback as JSON documents in the Redis store.
type RepoRedis struct {
	store *store.Store
}

func NewRepoRedis(s *store.Store) *RepoRedis {
	return &RepoRedis{store: s}
}

func (r *RepoRedis) Create(ctx context.Context, f *Feedback) error {
	return r.store.Put(ctx, collection, f.ID, f)
}

func (r *RepoRedis) GetByID(ctx context.Context, id string) (*Feedback, error) {
	var f Feedback
	if err := r.store.Get(ctx, collection, id, &f); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf("feedback %s", id)
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return &f, nil
}

func (r *RepoRedis) ListByDoctor(ctx context.Context, doctorID string) ([]*Feedback, error) {
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	var result []*Feedback
	for _, doc := range docs {
		var f Feedback
		if err := json.Unmarshal(doc, &f); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		if f.DoctorID == doctorID {
			result = append(result, &f)
		}
	}
	return result, nil
}
