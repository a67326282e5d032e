package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/be3health/patient-registry/internal/config"
	"github.com/be3health/patient-registry/internal/domain"
	"github.com/google/uuid"
)

func testManager() *JWTManager {
	return NewJWTManager(config.JWTConfig{
		Secret:          "0123456789abcdef0123456789abcdef",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "patient-registry-test",
	})
}

func testClaims() *domain.Claims {
	return &domain.Claims{
		UserID: uuid.New(),
		Email:  "recepcao@clinica.com.br",
		Role:   domain.RoleReceptionist,
	}
}

func TestTokenPairRoundtrip(t *testing.T) {
	m := testManager()
	in := testClaims()

	pair, err := m.GenerateTokenPair(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.TokenType != "Bearer" {
		t.Errorf("token type = %q", pair.TokenType)
	}
	if !pair.ExpiresAt.After(time.Now()) {
		t.Error("access token should expire in the future")
	}

	out, err := m.ValidateAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("validating access token: %v", err)
	}
	if out.UserID != in.UserID || out.Email != in.Email || out.Role != in.Role {
		t.Errorf("claims roundtrip mismatch: %+v vs %+v", out, in)
	}

	if _, err := m.ValidateRefreshToken(pair.RefreshToken); err != nil {
		t.Fatalf("validating refresh token: %v", err)
	}
}

func TestTokenTypeMismatch(t *testing.T) {
	m := testManager()

	pair, err := m.GenerateTokenPair(testClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.ValidateAccessToken(pair.RefreshToken); !errors.Is(err, ErrTokenTypeMismatch) {
		t.Errorf("refresh-as-access: got %v, want ErrTokenTypeMismatch", err)
	}
	if _, err := m.ValidateRefreshToken(pair.AccessToken); !errors.Is(err, ErrTokenTypeMismatch) {
		t.Errorf("access-as-refresh: got %v, want ErrTokenTypeMismatch", err)
	}
}

func TestExpiredToken(t *testing.T) {
	m := NewJWTManager(config.JWTConfig{
		Secret:          "0123456789abcdef0123456789abcdef",
		AccessTokenTTL:  -1 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "patient-registry-test",
	})

	pair, err := m.GenerateTokenPair(testClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.ValidateAccessToken(pair.AccessToken); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestWrongSecret(t *testing.T) {
	pair, err := testManager().GenerateTokenPair(testClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewJWTManager(config.JWTConfig{
		Secret:          "ffffffffffffffffffffffffffffffff",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "patient-registry-test",
	})
	if _, err := other.ValidateAccessToken(pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestWrongIssuer(t *testing.T) {
	pair, err := testManager().GenerateTokenPair(testClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewJWTManager(config.JWTConfig{
		Secret:          "0123456789abcdef0123456789abcdef",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "someone-else",
	})
	if _, err := other.ValidateAccessToken(pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestGarbageToken(t *testing.T) {
	m := testManager()

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("%q: got %v, want ErrTokenInvalid", tok, err)
		}
	}
}
