package signing

import (
	"rs256_signing_service/internal/domain/keys"
)

// Signer issues RS256 signatures over arbitrary message bytes. A Signer is
// bound to a single private key at construction time and is immutable and
// safe for concurrent use afterwards.
type Signer interface {
	// Sign computes the RSASSA-PKCS1-v1_5 signature over the SHA-256 digest
	// of message. The signature is exactly as long as the modulus.
	Sign(message []byte) ([]byte, error)

	// Algorithm returns the signature algorithm identifier ("RS256").
	Algorithm() string
}

// Verifier checks RS256 signatures against a single public key bound at
// construction time. Same lifecycle shape as Signer.
type Verifier interface {
	// Verify reports whether signature is a valid RSASSA-PKCS1-v1_5 signature
	// over the SHA-256 digest of message. A semantic mismatch is a normal
	// false result; only structural failures return an error.
	Verify(message []byte, signature []byte) (bool, error)

	// Algorithm returns the signature algorithm identifier ("RS256").
	Algorithm() string
}

// KeyDecoder extracts structured RSA key material from PEM text or raw
// unsigned big-endian component buffers. Pure parsing, no side effects.
type KeyDecoder interface {
	// DecodePEMKeyPair parses a PEM-wrapped PKCS#1/PKCS#8 private key or
	// PKIX/PKCS#1 public key and returns whichever halves the input encoded.
	DecodePEMKeyPair(pemText string) (*keys.KeyPair, error)

	// DecodeRawPublicKey interprets modulus and exponent as non-negative
	// big-endian integers, as used by JWK-style key exchange formats.
	DecodeRawPublicKey(modulus []byte, exponent []byte) (*keys.PublicKey, error)
}

// SigningService signs messages for callers holding PEM-encoded key text.
type SigningService interface {
	// SignWithPEM decodes the private key PEM, binds a Signer to it and
	// returns the signature over message.
	SignWithPEM(privateKeyPEM string, message []byte) ([]byte, error)
}

// VerificationService verifies signatures for callers holding PEM text or
// raw base64url key components.
type VerificationService interface {
	// VerifyWithPEM decodes the public key PEM, binds a Verifier to it and
	// checks signature over message.
	VerifyWithPEM(publicKeyPEM string, message []byte, signature []byte) (bool, error)

	// VerifyWithRawComponents builds a Verifier from unpadded base64url
	// modulus and exponent (RFC 7518 Base64urlUInt) and checks signature.
	VerifyWithRawComponents(modulusB64url, exponentB64url string, message []byte, signature []byte) (bool, error)
}
