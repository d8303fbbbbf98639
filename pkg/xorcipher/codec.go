package xorcipher

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Radix is the numeric base used to read messages and render ciphertext.
	Radix = 36
	// Alphabet lists the symbols accepted by ParseNumeral, in digit order.
	// Lowercase letters are accepted as well, and are treated the same as their uppercase counterparts.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrInvalidAlphabet = errors.New("input contains a symbol outside of the base-36 alphabet")
)

func isNumeralSymbol(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	}
	return false
}

// ParseNumeral reads a base-36 numeral into a non-negative integer.
// Sign characters, separators, and whitespace are all rejected with ErrInvalidAlphabet, as is empty input.
func ParseNumeral(numeral []byte) (*big.Int, error) {
	if len(numeral) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidAlphabet)
	}
	for i, b := range numeral {
		if !isNumeralSymbol(b) {
			return nil, fmt.Errorf("%w: byte 0x%02x at position %d", ErrInvalidAlphabet, b, i)
		}
	}
	val, ok := new(big.Int).SetString(string(numeral), Radix)
	if !ok {
		return nil, fmt.Errorf("%w: unable to parse '%s'", ErrInvalidAlphabet, numeral)
	}
	return val, nil
}

// FormatNumeral renders a non-negative integer as a lowercase base-36 numeral without leading zeros.
func FormatNumeral(val *big.Int) string {
	return val.Text(Radix)
}

// XorInt returns a new integer holding the bitwise XOR of a and b.
// Neither input is modified.
func XorInt(a, b *big.Int) *big.Int {
	return new(big.Int).Xor(a, b)
}

// Normalize returns the form a valid message takes after passing through Encrypt and Decrypt.
// Leading zero symbols are dropped and letters are lowercased. A message of only zeros becomes "0".
func Normalize(message string) string {
	norm := strings.TrimLeft(strings.ToLower(message), "0")
	if len(norm) == 0 && len(message) > 0 {
		return "0"
	}
	return norm
}
