package jwtx_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/authorizer/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "https://issuer.example",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("https://issuer.example"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		err := c.ValidateIssuer("https://ISSUER.example")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("https://other.example")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("absent issuer is not enforced", func(t *testing.T) {
		empty := &jwtx.Claims{}
		require.NoError(t, empty.ValidateIssuer("https://issuer.example"))
	})
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: []string{"orders", "billing"},
		},
	}

	t.Run("contains match", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience("billing"))
	})

	t.Run("no match", func(t *testing.T) {
		err := c.ValidateAudience("admin")
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("absent audience is not enforced", func(t *testing.T) {
		empty := &jwtx.Claims{}
		require.NoError(t, empty.ValidateAudience("admin"))
	})

	t.Run("empty list counts as absent", func(t *testing.T) {
		empty := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: jwt.ClaimStrings{}}}
		require.NoError(t, empty.ValidateAudience("admin"))
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	leeway := jwtx.DefaultLeeway

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry(now, leeway))
	})

	t.Run("expired inside leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-59 * time.Second)),
			},
		}
		require.NoError(t, claims.ValidateExpiry(now, leeway))
	})

	t.Run("expired beyond leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-61 * time.Second)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now, leeway), jwtx.ErrExpired)
	})

	t.Run("not yet valid beyond leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(61 * time.Second)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now, leeway), jwtx.ErrNotYetValid)
	})

	t.Run("not yet valid inside leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(59 * time.Second)),
			},
		}
		require.NoError(t, claims.ValidateExpiry(now, leeway))
	})

	t.Run("no exp or nbf", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.NoError(t, claims.ValidateExpiry(now, leeway))
	})
}

func TestClaimsAcceptStringOrList(t *testing.T) {
	t.Run("single strings", func(t *testing.T) {
		var c jwtx.Claims
		require.NoError(t, json.Unmarshal([]byte(`{"sub":"user:1","aud":"orders","scp":"read"}`), &c))
		require.Equal(t, jwt.ClaimStrings{"orders"}, c.Audience)
		require.Equal(t, jwt.ClaimStrings{"read"}, c.Scopes)
	})

	t.Run("lists", func(t *testing.T) {
		var c jwtx.Claims
		require.NoError(t, json.Unmarshal([]byte(`{"sub":"user:1","aud":["a","b"],"scp":["read","write"]}`), &c))
		require.Equal(t, jwt.ClaimStrings{"a", "b"}, c.Audience)
		require.Equal(t, jwt.ClaimStrings{"read", "write"}, c.Scopes)
	})

	t.Run("absent", func(t *testing.T) {
		var c jwtx.Claims
		require.NoError(t, json.Unmarshal([]byte(`{"sub":"user:1"}`), &c))
		require.False(t, c.HasAudience())
		require.False(t, c.HasIssuer())
		require.Empty(t, c.Scopes)
	})
}

func TestNewClaims(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewClaims("user:1", []string{"read"}, "iss", []string{"aud"}, 10*time.Minute, now)

	require.Equal(t, "user:1", c.Subject)
	require.Equal(t, now.Add(10*time.Minute), c.ExpiresAt.Time)
	require.Equal(t, now, c.NotBefore.Time)
	require.NotEmpty(t, c.ID)
	require.NotEqual(t, c.ID, jwtx.NewJTI())
}
