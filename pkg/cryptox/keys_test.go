package cryptox_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/aussiebroadwan/authorizer/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateES256Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateES256Key()
	require.NoError(t, err)

	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)

	key, ok := keyInterface.(*ecdsa.PrivateKey)
	require.True(t, ok)
	require.Equal(t, elliptic.P256(), key.Curve)
}

func TestGenerateECDSAKey_P384(t *testing.T) {
	pemBytes, err := cryptox.GenerateECDSAKey(elliptic.P384())
	require.NoError(t, err)

	signer, err := cryptox.ParsePrivateKey(pemBytes)
	require.NoError(t, err)

	key, ok := signer.(*ecdsa.PrivateKey)
	require.True(t, ok)
	require.Equal(t, elliptic.P384(), key.Curve)
}

func TestGenerateRSAKey(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		_, err := cryptox.GenerateRSAKey(1024)
		require.Error(t, err)
	})

	t.Run("2048", func(t *testing.T) {
		pemBytes, err := cryptox.GenerateRSAKey(2048)
		require.NoError(t, err)

		signer, err := cryptox.ParsePrivateKey(pemBytes)
		require.NoError(t, err)

		key, ok := signer.(*rsa.PrivateKey)
		require.True(t, ok)
		require.Equal(t, 2048, key.N.BitLen())
	})
}

func TestGenerateEd25519Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := cryptox.ParsePrivateKey(pemBytes)
	require.NoError(t, err)

	key, ok := signer.(ed25519.PrivateKey)
	require.True(t, ok)
	require.Equal(t, ed25519.PrivateKeySize, len(key))
}

func TestPublicKeyPEM(t *testing.T) {
	privPEM, err := cryptox.GenerateES256Key()
	require.NoError(t, err)

	pubPEM, err := cryptox.PublicKeyPEM(privPEM)
	require.NoError(t, err)

	block, _ := pem.Decode(pubPEM)
	require.NotNil(t, block)
	require.Equal(t, "PUBLIC KEY", block.Type)

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)

	// The derived public key must match the private key's public half
	signer, err := cryptox.ParsePrivateKey(privPEM)
	require.NoError(t, err)
	require.True(t, pub.(*ecdsa.PublicKey).Equal(signer.Public()))
}

func TestParsePrivateKey_Invalid(t *testing.T) {
	_, err := cryptox.ParsePrivateKey([]byte("not pem"))
	require.Error(t, err)

	_, err = cryptox.ParsePrivateKey(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte{1}}))
	require.Error(t, err)
}
