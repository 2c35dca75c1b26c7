// Package auth contains domain-level types for identity and session state.
// It is pure and free of provider/adapter concerns.
package auth

import "errors"

// State is the session lifecycle tag. A session starts Unresolved until the
// persisted identity has been loaded or found absent, then holds exactly one
// of Anonymous or Authenticated. The only backward transition is
// Authenticated to Anonymous on sign-out.
type State string

const (
	// StateUnresolved means the persisted identity has not been loaded yet.
	StateUnresolved State = "unresolved"
	// StateAnonymous means no identity is established.
	StateAnonymous State = "anonymous"
	// StateAuthenticated means an identity is established.
	StateAuthenticated State = "authenticated"
)

// Identity represents the signed-in user's profile. It is immutable once
// created; signing in again replaces it wholesale. Email doubles as the
// remote cart key.
type Identity struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

// IsZero reports whether the identity carries no data.
func (i Identity) IsZero() bool {
	return i.Username == "" && i.Email == "" && i.ProfilePicture == ""
}

// ErrIncompleteClaims is returned when a decoded identity token is missing
// required fields. Sign-in fails closed rather than producing a partially
// populated identity.
var ErrIncompleteClaims = errors.New("identity token claims incomplete")

// Claims is the decoded shape of a provider-issued identity token. The token
// is an untrusted external payload; Validate must pass before an Identity is
// built from it.
type Claims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Validate checks presence of every field an Identity requires.
func (c Claims) Validate() error {
	if c.Name == "" || c.Email == "" || c.Picture == "" {
		return ErrIncompleteClaims
	}
	return nil
}

// Identity maps validated claims to an Identity.
func (c Claims) Identity() (Identity, error) {
	if err := c.Validate(); err != nil {
		return Identity{}, err
	}
	return Identity{
		Username:       c.Name,
		Email:          c.Email,
		ProfilePicture: c.Picture,
	}, nil
}
