package envelope

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/cryptokit/pkg/mac"
	"github.com/saylorsolutions/cryptokit/pkg/xorcipher"
	log "github.com/sirupsen/logrus"
)

var (
	ErrAuthFailed = errors.New("envelope failed authentication")
	ErrKeyReuse   = errors.New("encryption secret must not be used as the authentication secret")
)

// Envelope holds an encrypted message along with the tag authenticating it.
type Envelope struct {
	version    uint8
	hashID     mac.HashID
	ciphertext []byte
	tag        mac.AuthTag
}

// Seal encrypts message with encSecret, and authenticates the resulting cipher text with auth.
// ErrKeyReuse is returned if auth is keyed with encSecret.
func Seal(message []byte, encSecret xorcipher.Secret, auth *mac.Authenticator) (*Envelope, error) {
	if auth.Secret().Equal(encSecret) {
		return nil, ErrKeyReuse
	}
	ct, err := xorcipher.Encrypt(message, encSecret)
	if err != nil {
		return nil, err
	}
	env := &Envelope{
		version:    currentVersion,
		hashID:     auth.HashID(),
		ciphertext: []byte(ct),
	}
	env.tag = auth.GenerateAuth(env.ciphertext)
	return env, nil
}

// Open checks the tag with auth, and only then decrypts the cipher text with encSecret.
// The returned message is in the form described by xorcipher.Normalize.
func (e *Envelope) Open(encSecret xorcipher.Secret, auth *mac.Authenticator) (string, error) {
	if e.hashID != auth.HashID() {
		log.WithFields(log.Fields{
			"envelope_hash": e.hashID.String(),
			"auth_hash":     auth.HashID().String(),
		}).Debug("Rejected envelope with mismatched hash")
		return "", fmt.Errorf("%w: sealed with %s, but checked with %s", ErrAuthFailed, e.hashID, auth.HashID())
	}
	if !auth.CheckAuth(e.ciphertext, e.tag) {
		log.WithField("hash", e.hashID.String()).Debug("Rejected envelope with invalid tag")
		return "", ErrAuthFailed
	}
	return xorcipher.Decrypt(e.ciphertext, encSecret)
}

// Ciphertext returns the base-36 cipher text.
func (e *Envelope) Ciphertext() string {
	return string(e.ciphertext)
}

// Tag returns a copy of the authentication tag.
func (e *Envelope) Tag() mac.AuthTag {
	tag := make(mac.AuthTag, len(e.tag))
	copy(tag, e.tag)
	return tag
}

// HashID returns the hash used to produce the tag.
func (e *Envelope) HashID() mac.HashID {
	return e.hashID
}
