package xorcipher

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	// SecretBits is the bit length of a secret produced by GenerateSecret.
	SecretBits = 256
	// SecretSize is the minimum width of Secret.Bytes.
	SecretSize = SecretBits / 8
)

var (
	ErrInvalidSecret = errors.New("invalid secret")
)

// Secret is an immutable, non-negative integer used as the key for Encrypt, Decrypt, and message authentication.
// The zero value is the integer 0.
type Secret struct {
	val *big.Int
}

// GenerateSecret will generate a Secret uniformly at random in the range [0, 2^256).
func GenerateSecret() (Secret, error) {
	return GenerateSecretBits(SecretBits)
}

// GenerateSecretBits will generate a Secret uniformly at random in the range [0, 2^bits).
func GenerateSecretBits(bits int) (Secret, error) {
	if bits <= 0 {
		return Secret{}, fmt.Errorf("%w: asked to generate a %d-bit secret", ErrInvalidSecret, bits)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	val, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return Secret{}, fmt.Errorf("failed to read random secret: %w", err)
	}
	return Secret{val: val}, nil
}

// NewSecret creates a Secret from an existing integer, which must be non-negative.
// The given value is copied, so later changes to it have no effect on the Secret.
func NewSecret(val *big.Int) (Secret, error) {
	if val == nil {
		return Secret{}, fmt.Errorf("%w: nil value", ErrInvalidSecret)
	}
	if val.Sign() < 0 {
		return Secret{}, fmt.Errorf("%w: negative value", ErrInvalidSecret)
	}
	return Secret{val: new(big.Int).Set(val)}, nil
}

// SecretFromUint64 creates a Secret from a small integer.
// This is mostly useful for tests and for sweeping small key spaces.
func SecretFromUint64(val uint64) Secret {
	return Secret{val: new(big.Int).SetUint64(val)}
}

// ParseSecret reads a Secret from its base-36 text form, as produced by Secret.String.
func ParseSecret(text string) (Secret, error) {
	val, err := ParseNumeral([]byte(text))
	if err != nil {
		return Secret{}, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	return Secret{val: val}, nil
}

func (s Secret) int() *big.Int {
	if s.val == nil {
		return new(big.Int)
	}
	return s.val
}

// Int returns a copy of the integer value of the Secret.
func (s Secret) Int() *big.Int {
	return new(big.Int).Set(s.int())
}

// BitLen returns the number of significant bits in the Secret.
func (s Secret) BitLen() int {
	return s.int().BitLen()
}

// Bytes returns the big-endian encoding of the Secret, left-padded with zeros to at least SecretSize bytes.
func (s Secret) Bytes() []byte {
	return PaddedBytes(s.int())
}

// Xor returns a new integer holding the bitwise XOR of the Secret and val.
func (s Secret) Xor(val *big.Int) *big.Int {
	return XorInt(s.int(), val)
}

// Equal reports whether two secrets hold the same integer.
func (s Secret) Equal(other Secret) bool {
	return s.int().Cmp(other.int()) == 0
}

// String returns the base-36 text form of the Secret.
func (s Secret) String() string {
	return FormatNumeral(s.int())
}

// PaddedBytes returns the big-endian encoding of a non-negative integer, left-padded with zeros to at least SecretSize bytes.
// Integers wider than SecretSize bytes use their natural width.
func PaddedBytes(val *big.Int) []byte {
	size := (val.BitLen() + 7) / 8
	if size < SecretSize {
		size = SecretSize
	}
	return val.FillBytes(make([]byte, size))
}
