// Package filestore persists the Identity as a single JSON record on the
// local filesystem, the device-storage analog for this client. One record
// under a fixed key: overwritten on each sign-in, deleted on sign-out.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	apperrors "github.com/slicelab/storefront/internal/errors"
	"github.com/slicelab/storefront/internal/ports"
)

const identityFileName = "identity.json"

// IdentityStore is a file-backed identity store.
type IdentityStore struct {
	path string
}

var _ ports.IdentityStore = (*IdentityStore)(nil)

// NewIdentityStore creates a file-backed store rooted at dir. The directory
// is created on first Save, not here, so construction never fails.
func NewIdentityStore(dir string) *IdentityStore {
	return &IdentityStore{path: filepath.Join(dir, identityFileName)}
}

// Save writes the identity, overwriting any prior value. The write goes
// through a temp file and rename so a crash never leaves a half-written
// record behind.
func (s *IdentityStore) Save(_ context.Context, id domainauth.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	dir := filepath.Dir(s.path)
	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return apperrors.Wrap(mkErr, apperrors.ErrCodePersistence, "create storage directory")
	}

	tmp, err := os.CreateTemp(dir, identityFileName+".tmp-*")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "create temp identity file")
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return apperrors.Wrap(writeErr, apperrors.ErrCodePersistence, "write identity")
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmpName)
		return apperrors.Wrap(closeErr, apperrors.ErrCodePersistence, "close identity file")
	}
	if renameErr := os.Rename(tmpName, s.path); renameErr != nil {
		_ = os.Remove(tmpName)
		return apperrors.Wrap(renameErr, apperrors.ErrCodePersistence, "store identity")
	}
	return nil
}

// Load reads the stored identity. Absence maps to ports.ErrNotFound;
// unparseable or empty records map to a malformed error so callers can log
// before treating them as absence.
func (s *IdentityStore) Load(_ context.Context) (domainauth.Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domainauth.Identity{}, ports.ErrNotFound
		}
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodePersistence, "read identity")
	}

	var id domainauth.Identity
	if unmarshalErr := json.Unmarshal(data, &id); unmarshalErr != nil {
		return domainauth.Identity{}, apperrors.Wrap(unmarshalErr, apperrors.ErrCodeMalformed, "parse stored identity")
	}
	if id.IsZero() {
		return domainauth.Identity{}, apperrors.Malformed("stored identity is empty")
	}
	return id, nil
}

// Delete removes the stored identity. Deleting an absent record is a no-op.
func (s *IdentityStore) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "delete identity")
	}
	return nil
}
