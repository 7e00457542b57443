package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLeeway is the clock-skew tolerance applied to exp and nbf.
const DefaultLeeway = 60 * time.Second

// Claims are the bearer-token claims the authorizer understands.
//
// Audience and Scopes accept either a single string or a list on the wire;
// jwt.ClaimStrings normalizes both forms into a list at parse time, so the
// rest of the code only ever deals with slices. A nil (or empty) slice
// means the claim was not present.
type Claims struct {
	jwt.RegisteredClaims

	// Granted scopes, e.g. ["account:admin", "trail"]
	Scopes jwt.ClaimStrings `json:"scp,omitempty"`
}

// NewClaims builds minimally-correct claims. Only tests and local tooling
// mint tokens; the authorizer itself never issues them.
func NewClaims(
	subject string,
	scopes []string,
	issuer string,
	audience []string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Scopes: jwt.ClaimStrings(scopes),
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasAudience reports whether the aud claim was present.
func (c *Claims) HasAudience() bool { return len(c.Audience) > 0 }

// HasIssuer reports whether the iss claim was present.
func (c *Claims) HasIssuer() bool { return c.Issuer != "" }

// ValidateIssuer checks the issuer, but only when the token carries one.
// The comparison is exact and case-sensitive.
func (c *Claims) ValidateIssuer(expected string) error {
	if !c.HasIssuer() {
		return nil
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks that expected is one of the token's audiences,
// but only when the token carries an aud claim at all.
func (c *Claims) ValidateAudience(expected string) error {
	if !c.HasAudience() {
		return nil
	}

	if slices.Contains(c.Audience, expected) {
		return nil
	}

	return ErrAudience
}

// ValidateExpiry checks exp and nbf against now, allowing leeway either way.
// Absent claims are not enforced.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	// Expired once now is past exp + leeway
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	// Not yet valid while now is before nbf - leeway
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
