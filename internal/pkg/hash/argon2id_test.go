package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2id_HashVerify(t *testing.T) {
	h := NewArgon2id("pepper")

	first, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)
	second, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(first), "$argon2id$v=19$"))
	assert.NotEqual(t, string(first), string(second))
	assert.True(t, h.Verify(string(first), "Str0ng!Pw"))
	assert.False(t, h.Verify(string(first), "Str0ng!Pw2"))
}

func TestArgon2id_VerifyMalformed(t *testing.T) {
	h := NewArgon2id("")

	tests := []string{
		"",
		"$argon2id$",
		"$argon2i$v=19$m=32768,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=1$m=32768,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=19$m=32768,t=3,p=2$!!$a2V5",
		"$2a$04$abcdefghijklmnopqrstuu",
		"$argon2id$v=19$m=32768,t=0,p=2$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=32768,t=3,p=0$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=8,t=3,p=2$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=4294967295,t=3,p=2$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=32768,t=3,p=2$$a2V5a2V5",
	}
	for _, stored := range tests {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify(stored, "Str0ng!Pw"))
		}, stored)
		assert.True(t, h.NeedsRehash(stored), stored)
	}
}

func TestArgon2id_NeedsRehash(t *testing.T) {
	h := NewArgon2id("")
	hashed, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)

	assert.False(t, h.NeedsRehash(string(hashed)))

	stronger := NewArgon2id("")
	stronger.params.iterations = 4
	assert.True(t, stronger.NeedsRehash(string(hashed)))
	assert.True(t, h.NeedsRehash("$2a$10$whatever"))
}
