package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	signed, err := codec.Issue("alice", "user-1", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := codec.Decode(signed)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user id user-1, got %q", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", claims.ExpiresAt)
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	// Sign a token with the same secret but an expiry in the past.
	stale := Claims{
		UserID: "user-1",
		Role:   "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, stale).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Decode(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	signed, err := codec.Issue("alice", "user-1", "viewer")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", signed)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := codec.Decode(tampered); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	signed, err := NewCodec("secret-a", time.Hour).Issue("alice", "user-1", "viewer")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewCodec("secret-b", time.Hour).Decode(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCodec_WrongSigningMethod(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	claims := Claims{
		UserID: "user-1",
		Role:   "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Decode(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for non-HS256 token, got %v", err)
	}
}

func TestCodec_Garbage(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	if _, err := codec.Decode("not-a-token"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNewCodec_DefaultTTL(t *testing.T) {
	codec := NewCodec("secret", 0)
	if codec.TTL() != defaultTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultTTL, codec.TTL())
	}
}
