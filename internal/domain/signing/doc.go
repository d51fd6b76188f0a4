// Package signing defines the core contracts, constants and error kinds for
// issuing and validating RS256 (RSASSA-PKCS1-v1_5 with SHA-256) signatures
// over opaque byte strings.
package signing
