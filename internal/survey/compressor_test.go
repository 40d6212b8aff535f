package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor_RoundTrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	payload := []byte(strings.Repeat(`{"name":"Alex","rating":5}`+"\n", 100))

	compressed, err := c.Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))

	plain, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, plain)
}

func TestZstdCompressor_EmptyInput(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	compressed, err := c.Compress(nil)
	require.NoError(t, err)

	plain, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, plain)
}

func TestZstdCompressor_GarbageInputFailsDecompress(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}
