package otp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric_Generate(t *testing.T) {
	gen, err := NewNumeric(0)
	require.NoError(t, err)

	seen := map[string]struct{}{}
	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, DefaultLength)
		assert.True(t, gen.Valid(code), code)
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 190, "codes should practically never repeat")
}

func TestNumeric_GenerateRejectsBiasedBytes(t *testing.T) {
	gen, err := NewNumeric(4)
	require.NoError(t, err)

	gen.random = bytes.NewReader([]byte{255, 250, 3, 0, 251, 19, 249, 7, 7, 7})

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "3099", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestNumeric_GenerateReaderError(t *testing.T) {
	gen, err := NewNumeric(6)
	require.NoError(t, err)
	gen.random = failingReader{}

	_, err = gen.Generate()
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestNumeric_Valid(t *testing.T) {
	gen, err := NewNumeric(6)
	require.NoError(t, err)

	assert.True(t, gen.Valid("000123"))
	assert.False(t, gen.Valid("12345"))
	assert.False(t, gen.Valid("1234567"))
	assert.False(t, gen.Valid("12a456"))
	assert.False(t, gen.Valid(" 12345"))
}

func TestNewNumeric_InvalidLength(t *testing.T) {
	_, err := NewNumeric(-1)
	assert.ErrorIs(t, err, ErrInvalidLength)
}
