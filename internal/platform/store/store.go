package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a document does not exist in its collection.
var ErrNotFound = errors.New("document not found")

// Store persists JSON documents in Redis. Every document lives under its own
// key ("doc:<collection>:<id>") and each collection keeps a list of its
// document IDs in insertion order ("idx:<collection>").
type Store struct {
	client *redis.Client
}

// Open connects to Redis using a URL of the form
// redis://[:password@]host:port[/db].
func Open(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Store{client: redis.NewClient(opts)}, nil
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func docKey(collection, id string) string {
	return fmt.Sprintf("doc:%s:%s", collection, id)
}

func indexKey(collection string) string {
	return fmt.Sprintf("idx:%s", collection)
}

// Put writes the document under its own key and appends the ID to the
// collection index when the document is new.
func (s *Store) Put(ctx context.Context, collection, id string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	key := docKey(collection, id)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("check document: %w", err)
	}
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if exists == 0 {
		if err := s.client.RPush(ctx, indexKey(collection), id).Err(); err != nil {
			return fmt.Errorf("index document: %w", err)
		}
	}
	return nil
}

// Get unmarshals the document with the given ID into out. Returns ErrNotFound
// when the document does not exist.
func (s *Store) Get(ctx context.Context, collection, id string, out interface{}) error {
	data, err := s.client.Get(ctx, docKey(collection, id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("read document: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// Delete removes the document and its index entry. It reports whether a
// document was actually removed; a failed unindex still reports the removal,
// since List skips dangling index entries.
func (s *Store) Delete(ctx context.Context, collection, id string) (bool, error) {
	removed, err := s.client.Del(ctx, docKey(collection, id)).Result()
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	if err := s.client.LRem(ctx, indexKey(collection), 0, id).Err(); err != nil {
		return removed > 0, fmt.Errorf("unindex document: %w", err)
	}
	return removed > 0, nil
}

// List returns the raw JSON payload of every document in the collection in
// insertion order. Index entries whose document has vanished are skipped.
func (s *Store) List(ctx context.Context, collection string) ([][]byte, error) {
	ids, err := s.client.LRange(ctx, indexKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(collection, id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	docs := make([][]byte, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		docs = append(docs, []byte(str))
	}
	return docs, nil
}
