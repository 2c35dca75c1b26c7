package auth

import (
	"errors"
	"testing"
)

func TestClaims_Validate(t *testing.T) {
	tests := []struct {
		name    string
		claims  Claims
		wantErr bool
	}{
		{"complete", Claims{Name: "Ana", Email: "ana@x.com", Picture: "http://img/a.png"}, false},
		{"missing name", Claims{Email: "ana@x.com", Picture: "http://img/a.png"}, true},
		{"missing email", Claims{Name: "Ana", Picture: "http://img/a.png"}, true},
		{"missing picture", Claims{Name: "Ana", Email: "ana@x.com"}, true},
		{"empty", Claims{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.claims.Validate()
			if tt.wantErr && !errors.Is(err, ErrIncompleteClaims) {
				t.Fatalf("expected ErrIncompleteClaims, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestClaims_Identity(t *testing.T) {
	claims := Claims{Name: "Ana", Email: "ana@x.com", Picture: "http://img/a.png"}

	id, err := claims.Identity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Identity{Username: "Ana", Email: "ana@x.com", ProfilePicture: "http://img/a.png"}
	if id != want {
		t.Fatalf("identity = %+v, want %+v", id, want)
	}

	if _, err := (Claims{Name: "Ana"}).Identity(); !errors.Is(err, ErrIncompleteClaims) {
		t.Fatalf("expected fail-closed on partial claims, got %v", err)
	}
}

func TestIdentity_IsZero(t *testing.T) {
	if !(Identity{}).IsZero() {
		t.Fatal("empty identity should be zero")
	}
	if (Identity{Email: "ana@x.com"}).IsZero() {
		t.Fatal("identity with email should not be zero")
	}
}
