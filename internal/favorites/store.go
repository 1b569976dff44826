// Package favorites keeps per-client favorite product snapshots. Each
// client owns a single durable key holding the full JSON-serialized set;
// every mutation rewrites the whole snapshot, and an unparsable payload
// rehydrates as an empty set rather than failing the request.
package favorites

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Store manages favorite snapshots for storefront clients.
type Store interface {
	List(ctx context.Context, clientID string) ([]Snapshot, error)
	Add(ctx context.Context, clientID string, snap Snapshot) error
	Remove(ctx context.Context, clientID string, productID int64) error
	IsFavorite(ctx context.Context, clientID string, productID int64) (bool, error)
}

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewStore constructs a Redis-backed favorites store.
func NewStore(client *redis.Client) Store {
	return &redisStore{client: client, prefix: "favorites:"}
}

func (s *redisStore) key(clientID string) string {
	return s.prefix + clientID
}

func (s *redisStore) load(ctx context.Context, clientID string) ([]Snapshot, error) {
	payload, err := s.client.Get(ctx, s.key(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var snaps []Snapshot
	if err := json.Unmarshal(payload, &snaps); err != nil {
		// Corrupt payload: start over with an empty set instead of
		// locking the client out of favorites entirely.
		return nil, nil
	}
	return snaps, nil
}

func (s *redisStore) save(ctx context.Context, clientID string, snaps []Snapshot) error {
	if snaps == nil {
		snaps = []Snapshot{}
	}
	payload, err := json.Marshal(snaps)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(clientID), payload, 0).Err()
}

func (s *redisStore) List(ctx context.Context, clientID string) ([]Snapshot, error) {
	return s.load(ctx, clientID)
}

// Add inserts the snapshot unless an entry with the same product ID is
// already present. Adding an existing favorite is a no-op.
func (s *redisStore) Add(ctx context.Context, clientID string, snap Snapshot) error {
	snaps, err := s.load(ctx, clientID)
	if err != nil {
		return err
	}
	for _, existing := range snaps {
		if existing.ID == snap.ID {
			return nil
		}
	}
	return s.save(ctx, clientID, append(snaps, snap))
}

// Remove deletes the entry with the given product ID. Removing an absent
// favorite is a no-op.
func (s *redisStore) Remove(ctx context.Context, clientID string, productID int64) error {
	snaps, err := s.load(ctx, clientID)
	if err != nil {
		return err
	}
	kept := snaps[:0]
	removed := false
	for _, existing := range snaps {
		if existing.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return nil
	}
	return s.save(ctx, clientID, kept)
}

func (s *redisStore) IsFavorite(ctx context.Context, clientID string, productID int64) (bool, error) {
	snaps, err := s.load(ctx, clientID)
	if err != nil {
		return false, err
	}
	for _, existing := range snaps {
		if existing.ID == productID {
			return true, nil
		}
	}
	return false, nil
}
