package cryptography

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"

	"rs256_signing_service/internal/domain/keys"
	"rs256_signing_service/internal/domain/signing"
	"rs256_signing_service/internal/pkg/logger"
)

// keyDecoder struct that implements the KeyDecoder interface
type keyDecoder struct {
	logger logger.Logger
}

// NewKeyDecoder creates and returns a new instance of keyDecoder
func NewKeyDecoder(logger logger.Logger) (signing.KeyDecoder, error) {
	return &keyDecoder{
		logger: logger,
	}, nil
}

// DecodePEMKeyPair parses RSA key material out of PEM text. Private keys are
// accepted in PKCS#1 ("RSA PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") form,
// public keys in PKIX ("PUBLIC KEY") and PKCS#1 ("RSA PUBLIC KEY") form.
// The parsers are tried in that order regardless of the block label, so
// mislabeled but well-formed blocks still decode.
func (d *keyDecoder) DecodePEMKeyPair(pemText string) (*keys.KeyPair, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block: %w", signing.ErrInvalidKeyFormat)
	}

	// First try to parse as a PKCS#1 private key
	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return d.keyPairFromPrivate(privateKey)
	}

	// If PKCS#1 parsing fails, try parsing as PKCS#8
	if keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		privateKey, ok := keyInterface.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not of type RSA: %w", signing.ErrInvalidKeyFormat)
		}
		return d.keyPairFromPrivate(privateKey)
	}

	// Public keys: PKIX format first, then PKCS#1
	if keyInterface, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		publicKey, ok := keyInterface.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("public key is not of type RSA: %w", signing.ErrInvalidKeyFormat)
		}
		return d.keyPairFromPublic(publicKey)
	}

	if publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return d.keyPairFromPublic(publicKey)
	}

	return nil, fmt.Errorf("unable to parse key in PKCS#1, PKCS#8 or PKIX format: %w", signing.ErrInvalidKeyFormat)
}

// DecodeRawPublicKey interprets modulus and exponent as unsigned big-endian
// integers, per the JWK Base64urlUInt component convention (RFC 7518 §6.3.1).
func (d *keyDecoder) DecodeRawPublicKey(modulus []byte, exponent []byte) (*keys.PublicKey, error) {
	if len(modulus) == 0 {
		return nil, fmt.Errorf("modulus must not be empty: %w", signing.ErrInvalidKeyFormat)
	}
	if len(exponent) == 0 {
		return nil, fmt.Errorf("exponent must not be empty: %w", signing.ErrInvalidKeyFormat)
	}

	publicKey := &keys.PublicKey{
		N: new(big.Int).SetBytes(modulus),
		E: new(big.Int).SetBytes(exponent),
	}

	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, signing.ErrInvalidKeyFormat)
	}

	return publicKey, nil
}

// keyPairFromPrivate extracts the numeric components of a parsed private key.
// The public side is always available since PKCS#1 and PKCS#8 structures
// carry the public exponent explicitly.
func (d *keyDecoder) keyPairFromPrivate(privateKey *rsa.PrivateKey) (*keys.KeyPair, error) {
	if len(privateKey.Primes) != 2 {
		return nil, fmt.Errorf("expected exactly two prime factors, got %d: %w", len(privateKey.Primes), signing.ErrInvalidKeyFormat)
	}

	pair := &keys.KeyPair{
		Public: &keys.PublicKey{
			N: privateKey.N,
			E: big.NewInt(int64(privateKey.E)),
		},
		Private: &keys.PrivateKey{
			N: privateKey.N,
			D: privateKey.D,
			P: privateKey.Primes[0],
			Q: privateKey.Primes[1],
		},
	}

	if err := pair.Private.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, signing.ErrInvalidKeyFormat)
	}

	d.logger.Info("Decoded RSA private key with modulus size ", pair.Private.Size()*8, " bits")
	return pair, nil
}

// keyPairFromPublic extracts the numeric components of a parsed public key.
func (d *keyDecoder) keyPairFromPublic(publicKey *rsa.PublicKey) (*keys.KeyPair, error) {
	pair := &keys.KeyPair{
		Public: &keys.PublicKey{
			N: publicKey.N,
			E: big.NewInt(int64(publicKey.E)),
		},
	}

	if err := pair.Public.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, signing.ErrInvalidKeyFormat)
	}

	d.logger.Info("Decoded RSA public key with modulus size ", pair.Public.Size()*8, " bits")
	return pair, nil
}
