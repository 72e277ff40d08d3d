package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/store"
)

const collection = "notifications"

// RepoRedis persists notifications as JSON documents in the Redis store.
type RepoRedis struct {
	store *store.Store
}

func NewRepoRedis(s *store.Store) *RepoRedis {
	return &RepoRedis{store: s}
}

func (r *RepoRedis) Create(ctx context.Context, n *Notification) error {
	return r.store.Put(ctx, collection, n.ID, n)
}

func (r *RepoRedis) GetByID(ctx context.Context, id string) (*Notification, error) {
	var n Notification
	if err := r.store.Get(ctx, collection, id, &n); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf("notification %s", id)
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

func (r *RepoRedis) Update(ctx context.Context, n *Notification) error {
	return r.store.Put(ctx, collection, n.ID, n)
}

func (r *RepoRedis) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, collection, id)
}

func (r *RepoRedis) ListByRecipient(ctx context.Context, recipientID, recipientType string) ([]*Notification, error) {
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	var result []*Notification
	for _, doc := range docs {
		var n Notification
		if err := json.Unmarshal(doc, &n); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		if n.RecipientID == recipientID && n.RecipientType == recipientType {
			result = append(result, &n)
		}
	}
	return result, nil
}
