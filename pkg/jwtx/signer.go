package jwtx

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"

	"github.com/aussiebroadwan/authorizer/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// Signer mints tokens the Validator accepts. The authorizer never issues
// tokens itself; this exists for tests, the e2e suite and local debugging.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	Public() crypto.PublicKey
}

type pemSigner struct {
	kid    string
	method jwt.SigningMethod
	key    crypto.Signer
}

// NewSigner loads a PKCS8 (or PKCS1 for RSA) private key from PEM bytes and
// picks the algorithm from the key type, mirroring NewValidator.
func NewSigner(kid string, pemKey []byte) (Signer, error) {
	priv, err := cryptox.ParsePrivateKey(pemKey)
	if err != nil {
		return nil, fmt.Errorf("jwtx: %w", err)
	}

	s := &pemSigner{kid: kid}
	switch key := priv.(type) {
	case *ecdsa.PrivateKey:
		switch key.Curve.Params().Name {
		case "P-256":
			s.method = jwt.SigningMethodES256
		case "P-384":
			s.method = jwt.SigningMethodES384
		case "P-521":
			s.method = jwt.SigningMethodES512
		default:
			return nil, fmt.Errorf("%w: ECDSA curve %s", ErrUnsupported, key.Curve.Params().Name)
		}
		s.key = key
	case *rsa.PrivateKey:
		s.method = jwt.SigningMethodRS256
		s.key = key
	case ed25519.PrivateKey:
		s.method = jwt.SigningMethodEdDSA
		s.key = key
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, priv)
	}

	return s, nil
}

func (s *pemSigner) Alg() string              { return s.method.Alg() }
func (s *pemSigner) KID() string              { return s.kid }
func (s *pemSigner) Public() crypto.PublicKey { return s.key.Public() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *pemSigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(s.method, claims)
	if s.kid != "" {
		t.Header["kid"] = s.kid
	}
	return t.SignedString(s.key)
}
