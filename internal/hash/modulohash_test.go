//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestModuloHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size as given", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm(179)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(179), tableSize, "correct tableSize value")
	})
}

func TestModuloHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm(179)

		// Execute
		bucketNo := h.HashFunc1(98109)

		// Check
		assert.Equal(t, int64(98109%179), bucketNo, "create a valid bucket number")
	})

	t.Run("colliding keys share bucket", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm(179)

		// Execute
		b1 := h.HashFunc1(1)
		b180 := h.HashFunc1(180)
		b2 := h.HashFunc1(2)

		// Check
		assert.Equal(t, int64(1), b1, "key 1 in bucket 1")
		assert.Equal(t, int64(1), b180, "key 180 in bucket 1")
		assert.Equal(t, int64(2), b2, "key 2 in bucket 2")
	})

	t.Run("bucket number is in range and deterministic for all table sizes", func(t *testing.T) {
		// Prepare
		sizes := []int64{1, 2, 7, 179, 1000, 65521}
		keys := []int64{0, 1, 2, 178, 179, 180, 98109, 1<<31 - 1, 1<<62 + 12345, -1, -180}

		for _, size := range sizes {
			h := NewModuloHashAlgorithm(size)
			for _, key := range keys {
				// Execute
				first := h.HashFunc1(key)
				second := h.HashFunc1(key)

				// Check
				assert.GreaterOrEqual(t, first, int64(0), "bucket not below zero")
				assert.Less(t, first, size, "bucket below table size")
				assert.Equal(t, first, second, "same key gives same bucket")
			}
		}
	})
}

func TestModuloHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm(10)
		assert.Equal(t, int64(10), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(179)

		// Check
		assert.Equal(t, int64(179), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64(1), h.HashFunc1(180), "hashes with new table size")
	})
}
