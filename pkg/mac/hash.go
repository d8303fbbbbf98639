package mac

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashID identifies the hash function used by an Authenticator.
type HashID uint8

const (
	HashSHA256 HashID = iota + 1
	HashSHA3
	HashBLAKE2b
)

var (
	ErrInvalidHash = errors.New("invalid hash function")
)

func (id HashID) String() string {
	switch id {
	case HashSHA256:
		return "SHA-256"
	case HashSHA3:
		return "SHA3-256"
	case HashBLAKE2b:
		return "BLAKE2b-256"
	default:
		return fmt.Sprintf("HashID(%d)", uint8(id))
	}
}

// Opt configures an Authenticator when passed to FromSecret.
type Opt = func(*Authenticator) error

// UseSHA256 selects SHA-256, which is the default.
func UseSHA256() Opt {
	return UseHash(HashSHA256, sha256.New)
}

// UseSHA3 selects SHA3-256.
func UseSHA3() Opt {
	return UseHash(HashSHA3, sha3.New256)
}

// UseBLAKE2b selects unkeyed BLAKE2b-256.
func UseBLAKE2b() Opt {
	return UseHash(HashBLAKE2b, newBLAKE2b)
}

// UseHash sets a custom hash constructor under the given id.
// The constructor must always return a hash with the same digest size.
func UseHash(id HashID, newHash func() hash.Hash) Opt {
	return func(a *Authenticator) error {
		if newHash == nil {
			return fmt.Errorf("%w: nil constructor for %s", ErrInvalidHash, id)
		}
		a.hashID = id
		a.newHash = newHash
		return nil
	}
}

// HashByID returns the option for a built-in hash, which is useful when the HashID was read from a serialized payload.
func HashByID(id HashID) (Opt, error) {
	switch id {
	case HashSHA256:
		return UseSHA256(), nil
	case HashSHA3:
		return UseSHA3(), nil
	case HashBLAKE2b:
		return UseBLAKE2b(), nil
	default:
		return nil, fmt.Errorf("%w: unknown id %d", ErrInvalidHash, uint8(id))
	}
}

func newBLAKE2b() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only returned for keys longer than 64 bytes.
		panic(err)
	}
	return h
}
