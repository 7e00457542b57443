package jwtx

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// NewValidatorES256 creates a Validator for ECDSA P-256 with SHA-256.
func NewValidatorES256(pub *ecdsa.PublicKey, cfg Config, opts ...Option) (*Validator, error) {
	if pub == nil || pub.Curve == nil {
		return nil, fmt.Errorf("%w: nil ECDSA key", ErrConfig)
	}

	// Make sure we're actually on P-256
	if name := pub.Curve.Params().Name; name != "P-256" {
		return nil, fmt.Errorf("%w: expected P-256 curve, got %s", ErrUnsupported, name)
	}

	return newValidator(jwt.SigningMethodES256, pub, cfg, opts...)
}

// newECDSAValidator maps the curve to its JOSE algorithm.
func newECDSAValidator(pub *ecdsa.PublicKey, cfg Config, opts ...Option) (*Validator, error) {
	if pub == nil || pub.Curve == nil {
		return nil, fmt.Errorf("%w: nil ECDSA key", ErrConfig)
	}

	switch name := pub.Curve.Params().Name; name {
	case "P-256":
		return NewValidatorES256(pub, cfg, opts...)
	case "P-384":
		return newValidator(jwt.SigningMethodES384, pub, cfg, opts...)
	case "P-521":
		return newValidator(jwt.SigningMethodES512, pub, cfg, opts...)
	default:
		return nil, fmt.Errorf("%w: ECDSA curve %s", ErrUnsupported, name)
	}
}
