package mac

import (
	"crypto/sha256"
	"crypto/subtle"
	"hash"
	"math/big"

	"github.com/saylorsolutions/cryptokit/pkg/xorcipher"
)

const (
	OPAD = 0x5c
	IPAD = 0x36
)

var (
	opad = big.NewInt(OPAD)
	ipad = big.NewInt(IPAD)
)

// AuthTag is a fixed-length authentication tag, sized to the digest of the hash in use.
type AuthTag []byte

// Authenticator generates and checks AuthTag values with a single secret set at construction.
// It holds no mutable state, so one Authenticator may be used from multiple goroutines.
type Authenticator struct {
	secret  xorcipher.Secret
	hashID  HashID
	newHash func() hash.Hash

	innerKey []byte
	outerKey []byte
}

// FromSecret creates an Authenticator from an existing secret.
// By default, SHA-256 is used as the hash function.
func FromSecret(secret xorcipher.Secret, opts ...Opt) (*Authenticator, error) {
	a := &Authenticator{
		secret:  secret,
		hashID:  HashSHA256,
		newHash: sha256.New,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.innerKey = xorcipher.PaddedBytes(secret.Xor(ipad))
	a.outerKey = xorcipher.PaddedBytes(secret.Xor(opad))
	return a, nil
}

// HashID returns the identifier of the hash function in use.
func (a *Authenticator) HashID() HashID {
	return a.hashID
}

// Size returns the length of tags produced by GenerateAuth.
func (a *Authenticator) Size() int {
	return a.newHash().Size()
}

// Secret returns the secret used to key this Authenticator.
func (a *Authenticator) Secret() xorcipher.Secret {
	return a.secret
}

// GenerateAuth computes the tag for message.
// The same secret and message always produce the same tag.
func (a *Authenticator) GenerateAuth(message []byte) AuthTag {
	h := a.newHash()
	h.Write(a.innerKey)
	h.Write(message)
	inner := h.Sum(nil)

	h = a.newHash()
	h.Write(a.outerKey)
	h.Write(inner)
	return h.Sum(nil)
}

// CheckAuth reports whether tag is the correct tag for message.
// Tags are compared in constant time.
func (a *Authenticator) CheckAuth(message []byte, tag AuthTag) bool {
	return subtle.ConstantTimeCompare(a.GenerateAuth(message), tag) == 1
}
