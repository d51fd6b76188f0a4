package cryptography

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"rs256_signing_service/internal/domain/keys"
	"rs256_signing_service/internal/domain/signing"
	"rs256_signing_service/internal/pkg/logger"
)

// rs256Signer struct that implements the Signer interface. It owns the
// decoded private key exclusively; the key is never exposed back to callers.
type rs256Signer struct {
	privateKey *keys.PrivateKey
	logger     logger.Logger
}

// NewRS256Signer binds the private half of a parsed key pair to a Signer.
// It fails with ErrMissingKeyMaterial when the pair carries no private key,
// e.g. when the source PEM encoded only a public key.
func NewRS256Signer(pair *keys.KeyPair, logger logger.Logger) (signing.Signer, error) {
	if pair == nil || pair.Private == nil {
		return nil, fmt.Errorf("key pair contains no private key: %w", signing.ErrMissingKeyMaterial)
	}
	if err := pair.Private.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, signing.ErrInvalidKeyFormat)
	}

	return &rs256Signer{
		privateKey: pair.Private,
		logger:     logger,
	}, nil
}

// Sign computes the RSASSA-PKCS1-v1_5 signature over the SHA-256 digest of
// message. Signing is deterministic: identical key and message always
// produce byte-identical signatures.
func (s *rs256Signer) Sign(message []byte) ([]byte, error) {
	hashed := sha256.Sum256(message)

	signature, err := signPKCS1v15(s.privateKey, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	s.logger.Info("RS256 signing succeeded")
	return signature, nil
}

// Algorithm returns the signature algorithm identifier.
func (s *rs256Signer) Algorithm() string {
	return signing.AlgorithmRS256
}

// rs256Verifier struct that implements the Verifier interface
type rs256Verifier struct {
	publicKey *keys.PublicKey
	logger    logger.Logger
}

// NewRS256Verifier binds the public half of a parsed key pair to a Verifier.
func NewRS256Verifier(pair *keys.KeyPair, logger logger.Logger) (signing.Verifier, error) {
	if pair == nil || pair.Public == nil {
		return nil, fmt.Errorf("key pair contains no public key: %w", signing.ErrMissingKeyMaterial)
	}
	if err := pair.Public.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, signing.ErrInvalidKeyFormat)
	}

	return &rs256Verifier{
		publicKey: pair.Public,
		logger:    logger,
	}, nil
}

// NewRS256VerifierFromRawComponents builds a Verifier from unpadded base64url
// modulus and exponent text, per the JWK Base64urlUInt convention
// (RFC 7518 §6.3.1).
func NewRS256VerifierFromRawComponents(modulusB64url, exponentB64url string, logger logger.Logger) (signing.Verifier, error) {
	modulus, err := base64.RawURLEncoding.DecodeString(modulusB64url)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64url modulus: %w", signing.ErrInvalidKeyFormat)
	}

	exponent, err := base64.RawURLEncoding.DecodeString(exponentB64url)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64url exponent: %w", signing.ErrInvalidKeyFormat)
	}

	decoder, err := NewKeyDecoder(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create key decoder: %w", err)
	}

	publicKey, err := decoder.DecodeRawPublicKey(modulus, exponent)
	if err != nil {
		return nil, err
	}

	return NewRS256Verifier(&keys.KeyPair{Public: publicKey}, logger)
}

// Verify reports whether signature is a valid RS256 signature over message.
// Wrong padding shape, wrong digest or a signature made with another key all
// yield a normal false result; only a wrong-length signature is an error.
func (v *rs256Verifier) Verify(message []byte, signature []byte) (bool, error) {
	hashed := sha256.Sum256(message)

	valid, err := verifyPKCS1v15(v.publicKey, hashed[:], signature)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	if valid {
		v.logger.Info("RS256 signature verified successfully")
	}
	return valid, nil
}

// Algorithm returns the signature algorithm identifier.
func (v *rs256Verifier) Algorithm() string {
	return signing.AlgorithmRS256
}
