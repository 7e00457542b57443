package jwtx

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

var (
	ErrNoKey      = errors.New("jwtx: no public key")
	ErrPrivateKey = errors.New("jwtx: refusing private key material")
)

// ParsePublicKey reads a verification key in any of the usual
// key-description formats:
//
//   - a single JWK ({"kty":"EC",...})
//   - a JWKS holding exactly one key ({"keys":[...]})
//   - PEM: PUBLIC KEY (PKIX), RSA PUBLIC KEY (PKCS1) or CERTIFICATE
//
// Private keys are rejected even though they contain the public half; they
// have no business sitting in the authorizer's config.
func ParsePublicKey(data []byte) (crypto.PublicKey, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrNoKey
	}

	if bytes.HasPrefix(data, []byte("-----BEGIN")) {
		return parsePEMPublicKey(data)
	}

	key, err := parseJWK(data)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := jwk.Export(key, &raw); err != nil {
		return nil, fmt.Errorf("jwtx: export JWK: %w", err)
	}
	return checkPublic(raw)
}

func parseJWK(data []byte) (jwk.Key, error) {
	var probe struct {
		Keys json.RawMessage `json:"keys"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("jwtx: key is neither PEM nor JSON: %w", err)
	}

	if probe.Keys == nil {
		key, err := jwk.ParseKey(data)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse JWK: %w", err)
		}
		return key, nil
	}

	set, err := jwk.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse JWKS: %w", err)
	}
	if set.Len() != 1 {
		return nil, fmt.Errorf("jwtx: JWKS must hold exactly one key, got %d", set.Len())
	}
	key, _ := set.Key(0)
	return key, nil
}

func parsePEMPublicKey(data []byte) (crypto.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for public key")
	}

	switch block.Type {
	case "PUBLIC KEY":
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse PKIX: %w", err)
		}
		return checkPublic(pub)
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse PKCS1: %w", err)
		}
		return pub, nil
	case "CERTIFICATE":
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse certificate: %w", err)
		}
		return checkPublic(cert.PublicKey)
	case "PRIVATE KEY", "RSA PRIVATE KEY", "EC PRIVATE KEY":
		return nil, ErrPrivateKey
	default:
		return nil, fmt.Errorf("jwtx: unsupported PEM type %q", block.Type)
	}
}

func checkPublic(raw any) (crypto.PublicKey, error) {
	switch k := raw.(type) {
	case *ecdsa.PublicKey, *rsa.PublicKey, ed25519.PublicKey:
		return k, nil
	case *ecdsa.PrivateKey, *rsa.PrivateKey, ed25519.PrivateKey:
		return nil, ErrPrivateKey
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, raw)
	}
}

// Thumbprint returns the RFC 7638 SHA-256 thumbprint of pub, base64url
// encoded. We use it as the kid when publishing the key.
func Thumbprint(pub crypto.PublicKey) (string, error) {
	key, err := jwk.Import(pub)
	if err != nil {
		return "", fmt.Errorf("jwtx: import key: %w", err)
	}

	tp, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("jwtx: thumbprint: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(tp), nil
}

// PublicJWKS wraps the verification key in a JWKS so operators can see
// exactly which key a running authorizer trusts.
func PublicJWKS(pub crypto.PublicKey, alg string) (jwk.Set, error) {
	key, err := jwk.Import(pub)
	if err != nil {
		return nil, fmt.Errorf("jwtx: import key: %w", err)
	}

	kid, err := Thumbprint(pub)
	if err != nil {
		return nil, err
	}
	if err := key.Set(jwk.KeyIDKey, kid); err != nil {
		return nil, fmt.Errorf("jwtx: set kid: %w", err)
	}
	if err := key.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return nil, fmt.Errorf("jwtx: set use: %w", err)
	}
	if sa, ok := signatureAlgorithm(alg); ok {
		if err := key.Set(jwk.AlgorithmKey, sa); err != nil {
			return nil, fmt.Errorf("jwtx: set alg: %w", err)
		}
	}

	set := jwk.NewSet()
	if err := set.AddKey(key); err != nil {
		return nil, fmt.Errorf("jwtx: add key: %w", err)
	}
	return set, nil
}

func signatureAlgorithm(alg string) (jwa.SignatureAlgorithm, bool) {
	switch alg {
	case "ES256":
		return jwa.ES256(), true
	case "ES384":
		return jwa.ES384(), true
	case "ES512":
		return jwa.ES512(), true
	case "RS256":
		return jwa.RS256(), true
	case "EdDSA":
		return jwa.EdDSA(), true
	default:
		return jwa.SignatureAlgorithm{}, false
	}
}
