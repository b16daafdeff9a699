package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// NonceSize - размер nonce для AES-GCM
	NonceSize = 12

	// sealVersion открывает каждый запечатанный блок
	sealVersion byte = 1
)

var (
	// ErrSealedTooShort indicates truncated sealed data
	ErrSealedTooShort = errors.New("sealed data too short")

	// ErrUnsupportedVersion indicates sealed data from an unknown format
	ErrUnsupportedVersion = errors.New("unsupported sealed data version")

	// ErrOpenFailed indicates a wrong passphrase or corrupted data
	ErrOpenFailed = errors.New("failed to open sealed data: wrong passphrase or corrupted data")
)

// Seal encrypts plaintext with AES-256-GCM under a key derived from
// passphrase. Layout: version (1) | salt (16) | nonce (12) | ciphertext+tag.
func Seal(plaintext []byte, passphrase string) ([]byte, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}
	key, err := DeriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	header := make([]byte, 0, 1+SaltSize+NonceSize)
	header = append(header, sealVersion)
	header = append(header, salt...)
	header = append(header, nonce...)

	// Заголовок аутентифицируется вместе с данными
	return aead.Seal(header, nonce, plaintext, header[:1+SaltSize]), nil
}

// Open decrypts data produced by Seal.
func Open(sealed []byte, passphrase string) ([]byte, error) {
	if len(sealed) < 1+SaltSize+NonceSize {
		return nil, ErrSealedTooShort
	}
	if sealed[0] != sealVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, sealed[0])
	}

	salt := sealed[1 : 1+SaltSize]
	nonce := sealed[1+SaltSize : 1+SaltSize+NonceSize]
	ciphertext := sealed[1+SaltSize+NonceSize:]

	key, err := DeriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, sealed[:1+SaltSize])
	if err != nil {
		return nil, ErrOpenFailed
	}
	return plaintext, nil
}

// SealString seals s; an empty string seals to nil.
func SealString(s, passphrase string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return Seal([]byte(s), passphrase)
}

// OpenString opens data sealed by SealString.
func OpenString(sealed []byte, passphrase string) (string, error) {
	if len(sealed) == 0 {
		return "", nil
	}
	b, err := Open(sealed, passphrase)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead, nil
}
