package jwtx

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Config is the fixed verification setup, loaded once at process start and
// never mutated afterwards. Every field is required.
type Config struct {
	// PublicKey verifies token signatures. Its type decides the algorithm.
	PublicKey crypto.PublicKey

	// Issuer the token must carry, if it carries one at all.
	Issuer string

	// Audience that must be listed in aud, if the token carries aud at all.
	Audience string
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrUnsupported = errors.New("jwtx: unsupported key type")
	ErrConfig      = errors.New("jwtx: invalid verifier config")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Option tweaks a Validator at construction time.
type Option func(*Validator)

// WithLeeway overrides DefaultLeeway.
func WithLeeway(d time.Duration) Option {
	return func(v *Validator) { v.leeway = d }
}

// WithClock replaces time.Now, mostly so tests can pin the current time.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// Validator checks bearer tokens against a single fixed public key.
// It holds no mutable state, so one instance is safe to share between
// concurrent requests.
type Validator struct {
	method   jwt.SigningMethod
	key      crypto.PublicKey
	issuer   string
	audience string
	leeway   time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

// NewValidator picks the signing algorithm from the key type and returns a
// Validator for it.
func NewValidator(cfg Config, opts ...Option) (*Validator, error) {
	switch pub := cfg.PublicKey.(type) {
	case *ecdsa.PublicKey:
		return newECDSAValidator(pub, cfg, opts...)
	case *rsa.PublicKey:
		return NewValidatorRS256(pub, cfg, opts...)
	case ed25519.PublicKey:
		return NewValidatorEdDSA(pub, cfg, opts...)
	case nil:
		return nil, fmt.Errorf("%w: public key is required", ErrConfig)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, cfg.PublicKey)
	}
}

// newValidator is the single construction path for every algorithm.
func newValidator(method jwt.SigningMethod, key crypto.PublicKey, cfg Config, opts ...Option) (*Validator, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("%w: issuer is required", ErrConfig)
	}
	if cfg.Audience == "" {
		return nil, fmt.Errorf("%w: audience is required", ErrConfig)
	}

	v := &Validator{
		method:   method,
		key:      key,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		leeway:   DefaultLeeway,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	// Claim checks are ours, in a fixed order, so the parser only does
	// structure and signature.
	v.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	return v, nil
}

// Alg returns the only algorithm this Validator accepts.
func (v *Validator) Alg() string { return v.method.Alg() }

// PublicKey returns the verification key.
func (v *Validator) PublicKey() crypto.PublicKey { return v.key }

// Verify runs every gate in order and returns the claims of the first token
// that passes them all. The first failing gate decides the error.
func (v *Validator) Verify(raw string) (Claims, error) {
	tokenStr, err := StripScheme(raw)
	if err != nil {
		return Claims{}, err
	}

	claims := Claims{}
	token, err := v.parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return Claims{}, classifyParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	// Now check all the claim requirements
	if err := claims.ValidateExpiry(v.now().UTC(), v.leeway); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// StripScheme removes a leading "Bearer " scheme marker, matched without
// regard to case, and rejects what is obviously not a compact JWS.
func StripScheme(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) >= len("Bearer ") && strings.EqualFold(s[:len("Bearer ")], "Bearer ") {
		s = strings.TrimSpace(s[len("Bearer "):])
	}

	if s == "" {
		return "", fmt.Errorf("%w: empty token", ErrMalformed)
	}
	if strings.Count(s, ".") != 2 {
		return "", fmt.Errorf("%w: expected three segments", ErrMalformed)
	}

	return s, nil
}

// classifyParseError folds golang-jwt errors into our two structural kinds.
// Anything that is not a shape problem is treated as a failed signature,
// which includes an unexpected or unavailable alg.
func classifyParseError(err error) error {
	if errors.Is(err, jwt.ErrTokenMalformed) {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidSig, err)
}
