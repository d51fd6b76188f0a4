package signing

// AlgorithmRS256 identifies RSASSA-PKCS1-v1_5 with SHA-256 (JWA "RS256")
const AlgorithmRS256 = "RS256"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// DigestSizeSHA256 is the SHA-256 digest size in bytes
const DigestSizeSHA256 = 32

// MinPaddingOverhead is the minimum EMSA-PKCS1-v1_5 overhead in bytes:
// the leading 0x00 0x01, at least eight 0xFF padding bytes and the 0x00 separator
const MinPaddingOverhead = 11
