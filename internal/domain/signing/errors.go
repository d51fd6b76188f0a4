package signing

import "errors"

var (
	// ErrInvalidKeyFormat indicates structurally malformed PEM/DER or
	// malformed base64/base64url key input.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrMissingKeyMaterial indicates that parsing succeeded but the key half
	// required for the requested operation is absent.
	ErrMissingKeyMaterial = errors.New("missing key material")

	// ErrKeyTooSmall indicates a modulus too short to hold the DigestInfo
	// plus the minimum PKCS#1 v1.5 padding.
	ErrKeyTooSmall = errors.New("key too small")

	// ErrSignatureLengthMismatch indicates a signature whose byte length does
	// not equal the modulus byte length. This is a structural rejection,
	// distinct from a normal verification mismatch which is a false result.
	ErrSignatureLengthMismatch = errors.New("signature length mismatch")
)
