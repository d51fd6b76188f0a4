package keys

import (
	"fmt"
	"math/big"
)

// PublicKey holds the numeric components of an RSA public key.
// Immutable once constructed.
type PublicKey struct {
	// N is the modulus.
	N *big.Int
	// E is the public exponent.
	E *big.Int
}

// Validate checks the public key invariants: n > 0, e > 1, e odd, e < n.
func (k *PublicKey) Validate() error {
	if k.N == nil || k.N.Sign() <= 0 {
		return fmt.Errorf("modulus must be a positive integer")
	}
	if k.E == nil || k.E.Cmp(big.NewInt(1)) <= 0 {
		return fmt.Errorf("public exponent must be greater than 1")
	}
	if k.E.Bit(0) == 0 {
		return fmt.Errorf("public exponent must be odd")
	}
	if k.E.Cmp(k.N) >= 0 {
		return fmt.Errorf("public exponent must be smaller than the modulus")
	}
	return nil
}

// Size returns the modulus length in bytes.
func (k *PublicKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// PrivateKey holds the numeric components of an RSA private key. The two
// prime factors are carried when the source encoding provides them; the
// signing path uses d directly and never requires CRT acceleration.
type PrivateKey struct {
	// N is the modulus.
	N *big.Int
	// D is the private exponent.
	D *big.Int
	// P and Q are the prime factors of N, when present.
	P *big.Int
	Q *big.Int
}

// Validate checks the private key invariants: n > 0, d > 0 and, when both
// primes are present, p * q == n. The relation between d and e is trusted
// from the source key material and not independently verified.
func (k *PrivateKey) Validate() error {
	if k.N == nil || k.N.Sign() <= 0 {
		return fmt.Errorf("modulus must be a positive integer")
	}
	if k.D == nil || k.D.Sign() <= 0 {
		return fmt.Errorf("private exponent must be a positive integer")
	}
	if k.P != nil && k.Q != nil && k.P.Sign() > 0 && k.Q.Sign() > 0 {
		if new(big.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
			return fmt.Errorf("prime factors do not multiply to the modulus")
		}
	}
	return nil
}

// Size returns the modulus length in bytes.
func (k *PrivateKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// KeyPair is the decoder output. Either side may be nil depending on what
// the input encoded; a private-key PEM yields both sides since the public
// exponent is explicitly present in PKCS#1 and PKCS#8 structures.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}
