package envelope

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/saylorsolutions/cryptokit/pkg/mac"
	"github.com/saylorsolutions/cryptokit/pkg/xorcipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secrets(t *testing.T, opts ...mac.Opt) (xorcipher.Secret, *mac.Authenticator) {
	t.Helper()
	encSecret, err := xorcipher.GenerateSecret()
	require.NoError(t, err)
	authSecret, err := xorcipher.GenerateSecret()
	require.NoError(t, err)
	auth, err := mac.FromSecret(authSecret, opts...)
	require.NoError(t, err)
	return encSecret, auth
}

func TestSealOpen(t *testing.T) {
	encSecret, auth := secrets(t)

	env, err := Seal([]byte("ATTACK"), encSecret, auth)
	require.NoError(t, err)
	assert.Equal(t, mac.HashSHA256, env.HashID())
	assert.NotEqual(t, "attack", env.Ciphertext())
	assert.Len(t, env.Tag(), auth.Size())

	msg, err := env.Open(encSecret, auth)
	require.NoError(t, err)
	assert.Equal(t, "attack", msg)
}

func TestSealOpen_LeadingZeros(t *testing.T) {
	encSecret, auth := secrets(t)

	env, err := Seal([]byte("007"), encSecret, auth)
	require.NoError(t, err)
	msg, err := env.Open(encSecret, auth)
	require.NoError(t, err)
	assert.Equal(t, xorcipher.Normalize("007"), msg)
}

func TestSeal_Neg(t *testing.T) {
	encSecret, auth := secrets(t)

	_, err := Seal([]byte("attack at dawn"), encSecret, auth)
	assert.ErrorIs(t, err, xorcipher.ErrInvalidAlphabet)

	_, err = Seal([]byte("attack"), auth.Secret(), auth)
	assert.ErrorIs(t, err, ErrKeyReuse)
}

func TestOpen_Tampered(t *testing.T) {
	encSecret, auth := secrets(t)
	env, err := Seal([]byte("attack"), encSecret, auth)
	require.NoError(t, err)

	t.Run("Swapped cipher text", func(t *testing.T) {
		other, err := Seal([]byte("retreat"), encSecret, auth)
		require.NoError(t, err)
		forged := *env
		forged.ciphertext = other.ciphertext
		_, err = forged.Open(encSecret, auth)
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("Flipped tag bit", func(t *testing.T) {
		forged := *env
		forged.tag = env.Tag()
		forged.tag[0] ^= 0x80
		_, err := forged.Open(encSecret, auth)
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("Wrong auth secret", func(t *testing.T) {
		eve, err := mac.FromSecret(encSecret)
		require.NoError(t, err)
		_, err = env.Open(encSecret, eve)
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("Mismatched hash", func(t *testing.T) {
		sha3Auth, err := mac.FromSecret(auth.Secret(), mac.UseSHA3())
		require.NoError(t, err)
		_, err = env.Open(encSecret, sha3Auth)
		assert.ErrorIs(t, err, ErrAuthFailed)
	})
}

func TestEnvelope_Binary(t *testing.T) {
	encSecret, auth := secrets(t, mac.UseBLAKE2b())
	env, err := Seal([]byte("attack"), encSecret, auth)
	require.NoError(t, err)

	data, err := env.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc7, 0xa9, currentVersion, byte(mac.HashBLAKE2b)}, data[:4])

	var read Envelope
	require.NoError(t, read.UnmarshalBinary(data))
	assert.Equal(t, env.Ciphertext(), read.Ciphertext())
	assert.Equal(t, env.Tag(), read.Tag())
	assert.Equal(t, mac.HashBLAKE2b, read.HashID())

	msg, err := read.Open(encSecret, auth)
	require.NoError(t, err)
	assert.Equal(t, "attack", msg)
}

func TestEnvelope_LittleEndian(t *testing.T) {
	encSecret, auth := secrets(t)
	env, err := Seal([]byte("attack"), encSecret, auth)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.write(&buf, binary.LittleEndian))
	assert.Equal(t, []byte{0xa9, 0xc7}, buf.Bytes()[:2])

	var read Envelope
	require.NoError(t, read.Read(&buf))
	msg, err := read.Open(encSecret, auth)
	require.NoError(t, err)
	assert.Equal(t, "attack", msg)
}

func TestEnvelope_InvalidBinary(t *testing.T) {
	encSecret, auth := secrets(t)
	env, err := Seal([]byte("attack"), encSecret, auth)
	require.NoError(t, err)
	data, err := env.MarshalBinary()
	require.NoError(t, err)

	corrupt := func(idx int, val byte) []byte {
		out := make([]byte, len(data))
		copy(out, data)
		out[idx] = val
		return out
	}

	tests := map[string][]byte{
		"Bad magic":       corrupt(0, 0x00),
		"Bad version":     corrupt(2, 0x09),
		"Unknown hash":    corrupt(3, 0x00),
		"Bad cipher text": corrupt(8, '!'),
		"Huge length":     corrupt(4, 0xff),
	}
	for name, given := range tests {
		t.Run(name, func(t *testing.T) {
			read := Envelope{version: 42}
			err := read.UnmarshalBinary(given)
			assert.ErrorIs(t, err, ErrInvalidHeader)
			assert.Equal(t, uint8(42), read.version, "Envelope should be unchanged on error")
		})
	}

	t.Run("Truncated", func(t *testing.T) {
		var read Envelope
		assert.Error(t, read.UnmarshalBinary(data[:len(data)-1]))
		assert.Error(t, read.UnmarshalBinary(nil))
	})

	t.Run("Invalid write", func(t *testing.T) {
		var empty Envelope
		_, err := empty.MarshalBinary()
		assert.ErrorIs(t, err, ErrInvalidHeader)

		var nilEnv *Envelope
		_, err = nilEnv.MarshalBinary()
		assert.ErrorIs(t, err, ErrInvalidHeader)
	})
}
