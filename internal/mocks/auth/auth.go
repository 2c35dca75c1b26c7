// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"sync"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider  = (*MockAuthProvider)(nil)
	_ ports.IdentityStore = (*MemoryIdentityStore)(nil)
	_ ports.UserRegistrar = (*RecordingRegistrar)(nil)
)

// MockAuthProvider simulates an identity provider with deterministic claims.
type MockAuthProvider struct {
	SignInFunc func(ctx context.Context) (domainauth.Claims, error)

	// DefaultClaims is returned when SignInFunc is nil.
	DefaultClaims domainauth.Claims
}

// NewMockAuthProvider creates a MockAuthProvider with sensible defaults.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		DefaultClaims: domainauth.Claims{
			Name:    "Mock User",
			Email:   "mock.user@example.com",
			Picture: "https://mock-idp/avatar.png",
		},
	}
}

func (m *MockAuthProvider) SignIn(ctx context.Context) (domainauth.Claims, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx)
	}
	return m.DefaultClaims, nil
}

// MemoryIdentityStore is an in-memory identity store for unit tests.
// Optional error hooks inject storage failures.
type MemoryIdentityStore struct {
	SaveErr   error
	LoadErr   error
	DeleteErr error

	mu     sync.Mutex
	stored *domainauth.Identity
}

// NewMemoryIdentityStore creates a new in-memory identity store.
func NewMemoryIdentityStore() *MemoryIdentityStore {
	return &MemoryIdentityStore{}
}

func (m *MemoryIdentityStore) Save(_ context.Context, id domainauth.Identity) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = &id
	return nil
}

func (m *MemoryIdentityStore) Load(_ context.Context) (domainauth.Identity, error) {
	if m.LoadErr != nil {
		return domainauth.Identity{}, m.LoadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		return domainauth.Identity{}, ports.ErrNotFound
	}
	return *m.stored, nil
}

func (m *MemoryIdentityStore) Delete(_ context.Context) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = nil
	return nil
}

// RecordingRegistrar records registration calls and optionally fails them.
type RecordingRegistrar struct {
	Err error

	mu         sync.Mutex
	registered []domainauth.Identity
}

// NewRecordingRegistrar creates a new recording registrar.
func NewRecordingRegistrar() *RecordingRegistrar {
	return &RecordingRegistrar{}
}

func (r *RecordingRegistrar) Register(_ context.Context, id domainauth.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.registered = append(r.registered, id)
	return nil
}

// Registered returns a snapshot of the identities registered so far.
func (r *RecordingRegistrar) Registered() []domainauth.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domainauth.Identity(nil), r.registered...)
}
