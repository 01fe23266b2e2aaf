package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDint64Unique(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		id := UUIDint64()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestUUIDBase32(t *testing.T) {
	assert.NotEmpty(t, UUIDBase32())
	assert.NotEqual(t, UUIDBase32(), UUIDBase32())
}
