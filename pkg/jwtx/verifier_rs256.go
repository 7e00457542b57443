package jwtx

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// minRSABits is the smallest modulus we are willing to trust.
const minRSABits = 2048

// NewValidatorRS256 creates a Validator for RSASSA-PKCS1-v1_5 with SHA-256.
func NewValidatorRS256(pub *rsa.PublicKey, cfg Config, opts ...Option) (*Validator, error) {
	if pub == nil || pub.N == nil {
		return nil, fmt.Errorf("%w: nil RSA key", ErrConfig)
	}

	if bits := pub.N.BitLen(); bits < minRSABits {
		return nil, fmt.Errorf("%w: RSA key is %d bits, need at least %d", ErrUnsupported, bits, minRSABits)
	}

	return newValidator(jwt.SigningMethodRS256, pub, cfg, opts...)
}
