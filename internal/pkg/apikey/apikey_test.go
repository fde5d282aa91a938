package apikey_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/geo-registry/internal/pkg/apikey"
)

func TestGenerate(t *testing.T) {
	t.Run("produces valid uuid", func(t *testing.T) {
		key := apikey.Generate()
		_, err := uuid.Parse(key)
		assert.NoError(t, err)
	})

	t.Run("keys are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			key := apikey.Generate()
			_, dup := seen[key]
			assert.False(t, dup, "duplicate key generated")
			seen[key] = struct{}{}
		}
	})
}

func TestHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		key := apikey.Generate()
		assert.Equal(t, apikey.Hash(key), apikey.Hash(key))
	})

	t.Run("hex sha256 length", func(t *testing.T) {
		assert.Len(t, apikey.Hash("anything"), 64)
	})

	t.Run("different keys different hashes", func(t *testing.T) {
		assert.NotEqual(t, apikey.Hash(apikey.Generate()), apikey.Hash(apikey.Generate()))
	})
}
