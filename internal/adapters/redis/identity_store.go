// Package redis provides a Redis-backed identity store for shared-terminal
// deployments (kiosks) where device-local files do not survive a session.
// Semantics match the file store: one record under a fixed key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	apperrors "github.com/slicelab/storefront/internal/errors"
	"github.com/slicelab/storefront/internal/ports"
)

const defaultIdentityKey = "storefront:identity"

// IdentityStore is a Redis-based identity store.
type IdentityStore struct {
	client redis.UniversalClient
	key    string
}

var _ ports.IdentityStore = (*IdentityStore)(nil)

// NewIdentityStore creates a Redis identity store under the default key.
func NewIdentityStore(client redis.UniversalClient) *IdentityStore {
	return NewIdentityStoreWithKey(client, defaultIdentityKey)
}

// NewIdentityStoreWithKey creates a Redis identity store under a custom key,
// letting multiple terminals share one Redis without clobbering each other.
func NewIdentityStoreWithKey(client redis.UniversalClient, key string) *IdentityStore {
	if key == "" {
		key = defaultIdentityKey
	}
	return &IdentityStore{client: client, key: key}
}

// Save writes the identity, overwriting any prior value. No TTL: the record
// lives until sign-out deletes it.
func (s *IdentityStore) Save(ctx context.Context, id domainauth.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	if setErr := s.client.Set(ctx, s.key, data, 0).Err(); setErr != nil {
		return apperrors.Wrap(setErr, apperrors.ErrCodePersistence, "redis set identity")
	}
	return nil
}

// Load reads the stored identity. Absence maps to ports.ErrNotFound;
// unparseable records map to a malformed error.
func (s *IdentityStore) Load(ctx context.Context) (domainauth.Identity, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Identity{}, ports.ErrNotFound
		}
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodePersistence, "redis get identity")
	}

	var id domainauth.Identity
	if unmarshalErr := json.Unmarshal([]byte(data), &id); unmarshalErr != nil {
		return domainauth.Identity{}, apperrors.Wrap(unmarshalErr, apperrors.ErrCodeMalformed, "parse stored identity")
	}
	if id.IsZero() {
		return domainauth.Identity{}, apperrors.Malformed("stored identity is empty")
	}
	return id, nil
}

// Delete removes the stored identity. Deleting an absent record is a no-op.
func (s *IdentityStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "redis delete identity")
	}
	return nil
}
