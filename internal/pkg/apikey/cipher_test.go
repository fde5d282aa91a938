package apikey_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo-registry/internal/pkg/apikey"
)

const testKey = "0123456789abcdef"

func TestNewCipher(t *testing.T) {
	t.Run("accepts 16 byte key", func(t *testing.T) {
		c, err := apikey.NewCipher(testKey)
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("rejects short key", func(t *testing.T) {
		c, err := apikey.NewCipher("too-short")
		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("rejects long key", func(t *testing.T) {
		c, err := apikey.NewCipher("0123456789abcdef0123456789abcdef")
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := apikey.NewCipher(testKey)
	require.NoError(t, err)

	t.Run("decrypt recovers plaintext", func(t *testing.T) {
		plain := apikey.Generate()

		encrypted, err := c.Encrypt(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, encrypted)

		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plain, decrypted)
	})

	t.Run("same plaintext encrypts differently", func(t *testing.T) {
		// Случайный nonce в каждом вызове
		first, err := c.Encrypt("secret")
		require.NoError(t, err)
		second, err := c.Encrypt("secret")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("tampered ciphertext fails", func(t *testing.T) {
		encrypted, err := c.Encrypt("secret")
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(encrypted)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xFF
		tampered := base64.StdEncoding.EncodeToString(raw)

		_, err = c.Decrypt(tampered)
		assert.Error(t, err)
	})

	t.Run("garbage input fails", func(t *testing.T) {
		_, err := c.Decrypt("not base64 at all!!!")
		assert.Error(t, err)

		_, err = c.Decrypt(base64.StdEncoding.EncodeToString([]byte("x")))
		assert.Error(t, err)
	})

	t.Run("different key cannot decrypt", func(t *testing.T) {
		other, err := apikey.NewCipher("fedcba9876543210")
		require.NoError(t, err)

		encrypted, err := c.Encrypt("secret")
		require.NoError(t, err)

		_, err = other.Decrypt(encrypted)
		assert.Error(t, err)
	})
}
