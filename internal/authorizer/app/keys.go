package app

import (
	"crypto"
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/authorizer/pkg/jwtx"
)

// LoadPublicKey resolves the configured verification key. The inline value
// wins over the file.
func LoadPublicKey(cfg Config) (crypto.PublicKey, error) {
	data := []byte(cfg.PublicKey)
	source := "AUTHORIZER_PUBLIC_KEY"

	if cfg.PublicKey == "" {
		b, err := os.ReadFile(cfg.PublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read public key file: %w", err)
		}
		data = b
		source = cfg.PublicKeyFile
	}

	pub, err := jwtx.ParsePublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key from %s: %w", source, err)
	}
	return pub, nil
}

// InitVerifier loads the key and builds the validator for it.
func InitVerifier(cfg Config, logger *slog.Logger) (*jwtx.Validator, error) {
	pub, err := LoadPublicKey(cfg)
	if err != nil {
		return nil, err
	}

	v, err := jwtx.NewValidator(jwtx.Config{
		PublicKey: pub,
		Issuer:    cfg.Issuer,
		Audience:  cfg.Audience,
	})
	if err != nil {
		return nil, err
	}

	kid, err := jwtx.Thumbprint(pub)
	if err != nil {
		return nil, err
	}

	logger.Info("verification key loaded", "alg", v.Alg(), "kid", kid)
	return v, nil
}
