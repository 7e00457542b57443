package jwtx

import (
	"crypto/ed25519"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// NewValidatorEdDSA creates a Validator for Ed25519 signatures.
func NewValidatorEdDSA(pub ed25519.PublicKey, cfg Config, opts ...Option) (*Validator, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: invalid Ed25519 public key size", ErrConfig)
	}

	return newValidator(jwt.SigningMethodEdDSA, pub, cfg, opts...)
}
