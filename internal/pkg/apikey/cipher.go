package apikey

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// KeyLength is the required encryption key length: 16 bytes, AES-128.
const KeyLength = 16

// Cipher encrypts and decrypts API keys under one process-wide static key.
// Mode is AES-GCM with a random nonce prepended to the ciphertext, so the
// stored value is base64(nonce || ciphertext) and tampering fails decryption.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher validates the key once; the process must refuse to start on a
// key of the wrong length.
func NewCipher(key string) (*Cipher, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("encryption key must be exactly %d characters long", KeyLength)
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

func (c *Cipher) Encrypt(plain string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) Decrypt(encrypted string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	if len(raw) < c.aead.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt data: %w", err)
	}

	return string(plain), nil
}
