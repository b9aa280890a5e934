package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIKey(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		key, err := NewAPIKey()
		require.NoError(t, err)
		assert.Len(t, key, 40)
		for _, c := range key {
			assert.True(t, strings.ContainsRune(tokenAlphabet, c), "unexpected char %q", c)
		}
		assert.False(t, seen[key], "api key generated twice")
		seen[key] = true
	}
}

func TestNewPassword(t *testing.T) {
	p, err := NewPassword()
	require.NoError(t, err)
	assert.Len(t, p, 10)
}
