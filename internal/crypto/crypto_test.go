package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt()
	require.NoError(t, err)
	b, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, a, SaltSize)
	assert.False(t, bytes.Equal(a, b), "соли должны различаться")
}

func TestDeriveKey(t *testing.T) {
	salt := bytes.Repeat([]byte{7}, SaltSize)

	tests := []struct {
		name       string
		passphrase string
		salt       []byte
		wantErr    bool
	}{
		{name: "valid", passphrase: "correct horse", salt: salt},
		{name: "empty passphrase", passphrase: "", salt: salt, wantErr: true},
		{name: "short salt", passphrase: "correct horse", salt: []byte{1, 2, 3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(tt.passphrase, tt.salt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, KeySize)

			again, err := DeriveKey(tt.passphrase, tt.salt)
			require.NoError(t, err)
			assert.Equal(t, key, again, "деривация должна быть детерминированной")
		})
	}
}

func TestSealOpen(t *testing.T) {
	secret := []byte("secret_0123456789abcdefghijklmnop")

	sealed, err := Seal(secret, "passphrase")
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), string(secret))
	assert.Equal(t, sealVersion, sealed[0])

	opened, err := Open(sealed, "passphrase")
	require.NoError(t, err)
	assert.Equal(t, secret, opened)

	other, err := Seal(secret, "passphrase")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, other, "соль и nonce случайны")
}

func TestOpen_Errors(t *testing.T) {
	sealed, err := Seal([]byte("value"), "passphrase")
	require.NoError(t, err)

	_, err = Open(sealed, "wrong")
	assert.ErrorIs(t, err, ErrOpenFailed)

	tampered := bytes.Clone(sealed)
	tampered[len(tampered)-1] ^= 0xff
	_, err = Open(tampered, "passphrase")
	assert.ErrorIs(t, err, ErrOpenFailed)

	badVersion := bytes.Clone(sealed)
	badVersion[0] = 9
	_, err = Open(badVersion, "passphrase")
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Open(sealed[:10], "passphrase")
	assert.ErrorIs(t, err, ErrSealedTooShort)
}

func TestSealString(t *testing.T) {
	sealed, err := SealString("", "passphrase")
	require.NoError(t, err)
	assert.Nil(t, sealed)

	s, err := OpenString(nil, "passphrase")
	require.NoError(t, err)
	assert.Empty(t, s)

	sealed, err = SealString("ntn_abc", "passphrase")
	require.NoError(t, err)
	s, err = OpenString(sealed, "passphrase")
	require.NoError(t, err)
	assert.Equal(t, "ntn_abc", s)
}

func TestFingerprint(t *testing.T) {
	assert.Empty(t, Fingerprint(""))
	fp := Fingerprint("secret_abc")
	assert.Len(t, fp, 12)
	assert.Equal(t, fp, Fingerprint("secret_abc"))
	assert.NotEqual(t, fp, Fingerprint("secret_abd"))
}
