package config

import (
	"context"
	"errors"
	"testing"
)

func TestValidateJWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"empty", "", true},
		{"blank", "   ", true},
		{"sample value", "your-secret-key-change-in-production", true},
		{"private value", "3f9c1d0e8b7a4c2f", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJWTSecret(tt.secret)
			if tt.wantErr && !errors.Is(err, ErrJWTSecretNotConfigured) {
				t.Fatalf("expected ErrJWTSecretNotConfigured, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestNewContainer_RequiresJWTSecret(t *testing.T) {
	for _, secret := range []string{"", "your-secret-key-change-in-production"} {
		clearEnv(t)
		t.Setenv("JWT_SECRET", secret)

		c, err := NewContainer(context.Background())
		if !errors.Is(err, ErrJWTSecretNotConfigured) {
			t.Fatalf("JWT_SECRET=%q: expected ErrJWTSecretNotConfigured, got %v", secret, err)
		}
		if c != nil {
			t.Fatalf("JWT_SECRET=%q: expected no container", secret)
		}
	}
}
