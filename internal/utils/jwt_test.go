// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	email := "luke@tatooine.org"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, email, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != email {
		t.Errorf("expected subject %s, got %s", email, token.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@b.c", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "a@b.c", 0, "key"},
		{"empty key", "iss", "a@b.c", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, "leia@alderaan.org", 5*time.Minute, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	email, err := parsedToken.Email()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "leia@alderaan.org" {
		t.Errorf("expected email leia@alderaan.org, got %s", email)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "a@b.c", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "a@b.c", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "a@b.c", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_NoneAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "a@b.c",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(unsigned, "key", "iss"); err == nil {
		t.Error("expected error for alg=none token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
