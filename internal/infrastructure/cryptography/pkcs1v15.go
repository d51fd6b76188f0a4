package cryptography

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"rs256_signing_service/internal/domain/keys"
	"rs256_signing_service/internal/domain/signing"
)

// sha256DigestInfoPrefix is the DER-encoded DigestInfo header for SHA-256
// (RFC 8017 §9.2 note 1). The raw 32-byte digest is appended to it.
var sha256DigestInfoPrefix = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
	0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
}

// encodeEMSAPKCS1v15 builds the encoded message
// EM = 0x00 || 0x01 || PS || 0x00 || DigestInfo of length k, where PS is a
// run of 0xFF bytes. The encoding is fully deterministic: PKCS#1 v1.5
// signing defines no random padding, so no random source is consulted.
func encodeEMSAPKCS1v15(digest []byte, k int) ([]byte, error) {
	digestInfo := make([]byte, 0, len(sha256DigestInfoPrefix)+len(digest))
	digestInfo = append(digestInfo, sha256DigestInfoPrefix...)
	digestInfo = append(digestInfo, digest...)

	if k < len(digestInfo)+signing.MinPaddingOverhead {
		return nil, fmt.Errorf("modulus of %d bytes cannot hold a %d byte DigestInfo: %w",
			k, len(digestInfo), signing.ErrKeyTooSmall)
	}

	em := make([]byte, k)
	em[1] = 0x01
	for i := 2; i < k-len(digestInfo)-1; i++ {
		em[i] = 0xff
	}
	copy(em[k-len(digestInfo):], digestInfo)
	return em, nil
}

// signPKCS1v15 computes s = m^d mod n over the encoded message and returns
// it as a big-endian sequence of exactly k bytes, left-zero-padded.
func signPKCS1v15(privateKey *keys.PrivateKey, digest []byte) ([]byte, error) {
	k := privateKey.Size()

	em, err := encodeEMSAPKCS1v15(digest, k)
	if err != nil {
		return nil, err
	}

	m := new(big.Int).SetBytes(em)
	s := new(big.Int).Exp(m, privateKey.D, privateKey.N)

	signature := make([]byte, k)
	s.FillBytes(signature)
	return signature, nil
}

// verifyPKCS1v15 recovers EM' = s^e mod n and compares it against the
// recomputed encoded message. A mismatch is a normal false result; only a
// signature of the wrong byte length is an error.
func verifyPKCS1v15(publicKey *keys.PublicKey, digest []byte, signature []byte) (bool, error) {
	k := publicKey.Size()

	if len(signature) != k {
		return false, fmt.Errorf("signature is %d bytes, modulus requires %d: %w",
			len(signature), k, signing.ErrSignatureLengthMismatch)
	}

	expected, err := encodeEMSAPKCS1v15(digest, k)
	if err != nil {
		return false, err
	}

	s := new(big.Int).SetBytes(signature)
	m := new(big.Int).Exp(s, publicKey.E, publicKey.N)

	em := make([]byte, k)
	m.FillBytes(em)

	return subtle.ConstantTimeCompare(em, expected) == 1, nil
}
