package util

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-with-at-least-32-chars"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, 30*time.Minute)

	token, err := codec.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	sub, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if sub != "alice" {
		t.Errorf("Verify() subject = %q, want alice", sub)
	}
}

func TestTokenCodec_Expiry(t *testing.T) {
	issuedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute
	token, err := NewTokenCodec(testSecret, ttl).WithClock(fixedClock(issuedAt)).Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"just issued", issuedAt, nil},
		{"one second before expiry", issuedAt.Add(ttl - time.Second), nil},
		{"at expiry", issuedAt.Add(ttl), ErrTokenExpired},
		{"one second after expiry", issuedAt.Add(ttl + time.Second), ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenCodec(testSecret, ttl).WithClock(fixedClock(tt.now)).Verify(token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenCodec_Rejects(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Minute)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	wrongKey, err := NewTokenCodec("another-secret-key-with-32-characters!", time.Minute).Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp}).
		SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign HS512 token: %v", err)
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token without exp: %v", err)
	}

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: exp}).
		SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token without sub: %v", err)
	}

	valid, err := codec.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := map[string]string{
		"garbage":         "not.a.token",
		"wrong key":       wrongKey,
		"alg none":        none,
		"other algorithm": hs512,
		"missing exp":     noExp,
		"missing sub":     noSub,
		"tampered":        tampered,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := codec.Verify(token); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("Verify() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestNewTokenCodec_DefaultTTL(t *testing.T) {
	if got := NewTokenCodec(testSecret, 0).TTL(); got != DefaultTokenTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTokenTTL)
	}
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc", "abc"},
		{"BEARER   abc  ", "abc"},
		{"", ""},
		{"Bearer", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"abc.def.ghi", ""},
	}
	for _, tt := range tests {
		if got := ParseBearer(tt.header); got != tt.want {
			t.Errorf("ParseBearer(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
