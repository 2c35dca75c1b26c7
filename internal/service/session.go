// Package service orchestrates the storefront client core: the session
// lifecycle and the cart state machine. Adapters do the I/O; this package
// owns the state and its invariants.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/ports"
)

const registerTimeout = 15 * time.Second

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Provider  ports.AuthProvider
	Store     ports.IdentityStore
	Registrar ports.UserRegistrar
	Logger    *slog.Logger
}

// SessionManager is the single source of truth for "who is signed in". The
// in-memory identity is authoritative for the running session; durable
// storage and backend registration are best effort. Consumers read snapshots
// and never mutate.
type SessionManager struct {
	provider  ports.AuthProvider
	store     ports.IdentityStore
	registrar ports.UserRegistrar
	logger    *slog.Logger

	mu       sync.RWMutex
	state    domainauth.State
	identity domainauth.Identity

	registrations sync.WaitGroup
}

// NewSessionManager constructs a SessionManager in the Unresolved state.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		provider:  opts.Provider,
		store:     opts.Store,
		registrar: opts.Registrar,
		logger:    logger,
		state:     domainauth.StateUnresolved,
	}
}

// Load resolves the persisted identity exactly once at startup and returns
// the resulting state. A stored identity that reads back parseable flips the
// session to Authenticated; absence or malformed data resolves to Anonymous.
// Load never fails: storage errors are logged and degrade to Anonymous, so
// callers can always branch on the returned state. Callers must not consult
// State before Load has returned.
func (m *SessionManager) Load(ctx context.Context) domainauth.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != domainauth.StateUnresolved {
		return m.state
	}

	id, err := m.store.Load(ctx)
	switch {
	case err == nil:
		m.identity = id
		m.state = domainauth.StateAuthenticated
	case errors.Is(err, ports.ErrNotFound):
		m.state = domainauth.StateAnonymous
	default:
		// Malformed or unreadable storage is treated as absence.
		m.logger.Warn("loading stored identity failed, starting anonymous", "error", err)
		m.state = domainauth.StateAnonymous
	}
	return m.state
}

// BeginSignIn runs the external provider exchange. The boolean reports
// whether an identity token became available; the returned claims are only
// meaningful when it is true. Cancellation by the user is not an error: the
// session stays as it was and the caller surfaces a notice. BeginSignIn
// itself never establishes an identity; pass the claims to CompleteSignIn.
func (m *SessionManager) BeginSignIn(ctx context.Context) (domainauth.Claims, bool, error) {
	claims, err := m.provider.SignIn(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrSignInCanceled) {
			m.logger.Info("sign-in canceled by user")
			return domainauth.Claims{}, false, nil
		}
		return domainauth.Claims{}, false, fmt.Errorf("provider sign-in: %w", err)
	}
	return claims, true, nil
}

// CompleteSignIn validates the decoded token claims, establishes the
// identity, persists it, and mirrors it to the backend. Persistence and
// registration failures are logged only: the local Authenticated state is
// authoritative and a flaky network must not lock the user out. Claims with
// missing fields fail closed and leave the session untouched.
func (m *SessionManager) CompleteSignIn(ctx context.Context, claims domainauth.Claims) (domainauth.Identity, error) {
	id, err := claims.Identity()
	if err != nil {
		return domainauth.Identity{}, err
	}

	m.mu.Lock()
	m.identity = id
	m.state = domainauth.StateAuthenticated
	m.mu.Unlock()

	if saveErr := m.store.Save(ctx, id); saveErr != nil {
		m.logger.Warn("persisting identity failed, session is memory-only", "error", saveErr)
	}

	m.registerDetached(ctx, id)

	return id, nil
}

// registerDetached mirrors the identity to the backend as a detached task.
// The caller does not await its outcome for correctness purposes; failure is
// only logged.
func (m *SessionManager) registerDetached(ctx context.Context, id domainauth.Identity) {
	if m.registrar == nil {
		return
	}

	m.registrations.Add(1)
	go func() {
		defer m.registrations.Done()

		regCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), registerTimeout)
		defer cancel()

		if err := m.registrar.Register(regCtx, id); err != nil {
			m.logger.Warn("backend user registration failed", "email", id.Email, "error", err)
			return
		}
		m.logger.Info("user registered with backend", "email", id.Email)
	}()
}

// SignOut transitions to Anonymous and deletes the persisted identity. Local
// state is cleared synchronously; a storage failure is logged and the
// sign-out still holds for the running session. No backend call is made.
func (m *SessionManager) SignOut(ctx context.Context) {
	m.mu.Lock()
	m.identity = domainauth.Identity{}
	m.state = domainauth.StateAnonymous
	m.mu.Unlock()

	if err := m.store.Delete(ctx); err != nil {
		m.logger.Warn("deleting stored identity failed", "error", err)
	}
}

// State returns the current session state.
func (m *SessionManager) State() domainauth.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Identity returns a snapshot of the current identity. The boolean is false
// unless the session is Authenticated.
func (m *SessionManager) Identity() (domainauth.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != domainauth.StateAuthenticated {
		return domainauth.Identity{}, false
	}
	return m.identity, true
}
