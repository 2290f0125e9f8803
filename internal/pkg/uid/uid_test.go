package uid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflake_Generate(t *testing.T) {
	gen, err := NewSnowflake(1)
	require.NoError(t, err)

	var prev int64
	for range 1000 {
		id := gen.Generate()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestNewSnowflake_NodeOutOfRange(t *testing.T) {
	_, err := NewSnowflake(4096)
	assert.Error(t, err)
}

func TestUUID_Generate(t *testing.T) {
	gen := NewUUID()

	a, b := gen.Generate(), gen.Generate()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestToken_Generate(t *testing.T) {
	gen := NewToken(0)

	a, b := gen.Generate(), gen.Generate()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, "^[0-9a-f]+$", a)

	assert.Len(t, NewToken(20).Generate(), 40)
}
