package xorcipher

import (
	"math/big"

	log "github.com/sirupsen/logrus"
)

// Encrypt reads message as a base-36 numeral, XORs it with secret, and returns the result as base-36 text.
// ErrInvalidAlphabet is returned if message contains anything other than the symbols in Alphabet.
func Encrypt(message []byte, secret Secret) (string, error) {
	val, err := ParseNumeral(message)
	if err != nil {
		return "", err
	}
	return FormatNumeral(secret.Xor(val)), nil
}

// Decrypt recovers a message from ciphertext produced by Encrypt with the same secret.
// This is the same operation as Encrypt, so the same alphabet constraints apply.
// The result is lowercase and has no leading zeros, see Normalize.
func Decrypt(ciphertext []byte, secret Secret) (string, error) {
	return Encrypt(ciphertext, secret)
}

// ExhaustiveSearch tries every candidate secret in the range [start, end), and reports whether any of them decrypts ciphertext to plaintext.
// The plaintext is compared in its normalized form, so case and leading zeros don't matter.
// A false result only means the secret wasn't in the swept range.
func ExhaustiveSearch(plaintext, ciphertext string, start, end uint32) (bool, error) {
	cipherVal, err := ParseNumeral([]byte(ciphertext))
	if err != nil {
		return false, err
	}
	want := Normalize(plaintext)
	guess := new(big.Int)
	candidate := new(big.Int)
	for i := start; i < end; i++ {
		guess.SetUint64(uint64(i))
		if FormatNumeral(candidate.Xor(cipherVal, guess)) == want {
			log.WithFields(log.Fields{
				"start": start,
				"end":   end,
				"guess": i,
			}).Debug("Exhaustive search found a matching secret")
			return true, nil
		}
	}
	log.WithFields(log.Fields{
		"start": start,
		"end":   end,
	}).Debug("Exhaustive search swept range without a match")
	return false, nil
}
