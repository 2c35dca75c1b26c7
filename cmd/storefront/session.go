package main

import (
	"context"
	"os"
	"time"

	"github.com/slicelab/storefront/internal/adapters/rest"
	"github.com/slicelab/storefront/internal/bootstrap"
	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/service"
)

const signInTimeout = 5 * time.Minute

// buildSession wires the backend client and session manager for a command.
// The backend client doubles as the user registrar so a completed sign-in is
// mirrored to the store.
func buildSession(cmdCtx *commandContext) (*service.SessionManager, *rest.Client, error) {
	backend, err := bootstrap.BuildBackendClient(cmdCtx.Config.Backend)
	if err != nil {
		return nil, nil, err
	}

	manager, err := bootstrap.BuildSessionManager(bootstrap.SessionConfig{
		Auth:      cmdCtx.Config.Auth,
		Storage:   cmdCtx.Config.Storage,
		Registrar: backend,
		Logger:    cmdCtx.Logger,
		OnAuthURL: func(authURL string) {
			_ = writef(os.Stdout, "Open this URL in your browser to sign in:\n\n  %s\n\n", authURL)
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return manager, backend, nil
}

func runLogin(cmdCtx *commandContext, _ []string) error {
	manager, _, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}

	if manager.Load(cmdCtx.Ctx) == domainauth.StateAuthenticated {
		id, _ := manager.Identity()
		return writef(os.Stdout, "Already signed in as %s <%s>\n", id.Username, id.Email)
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, signInTimeout)
	defer cancel()

	claims, ok, err := manager.BeginSignIn(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return writef(os.Stdout, "Sign-in canceled.\n")
	}

	id, err := manager.CompleteSignIn(ctx, claims)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Signed in as %s <%s>\n", id.Username, id.Email)
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	manager, _, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}

	if manager.Load(cmdCtx.Ctx) != domainauth.StateAuthenticated {
		return writef(os.Stdout, "Not signed in.\n")
	}

	manager.SignOut(cmdCtx.Ctx)
	return writef(os.Stdout, "Signed out.\n")
}

func runWhoami(cmdCtx *commandContext, _ []string) error {
	manager, _, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}

	if manager.Load(cmdCtx.Ctx) != domainauth.StateAuthenticated {
		return writef(os.Stdout, "Not signed in.\n")
	}

	id, _ := manager.Identity()
	return writef(os.Stdout, "%s <%s>\n", id.Username, id.Email)
}

// requireIdentity loads the session and returns the signed-in identity, or
// an error directing the user to log in.
func requireIdentity(cmdCtx *commandContext, manager *service.SessionManager) (domainauth.Identity, error) {
	if manager.Load(cmdCtx.Ctx) != domainauth.StateAuthenticated {
		return domainauth.Identity{}, errNotSignedIn
	}
	id, _ := manager.Identity()
	return id, nil
}
