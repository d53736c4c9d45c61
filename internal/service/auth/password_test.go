package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hashed)

	assert.NoError(t, hasher.Compare(hashed, "1234"))
	assert.Error(t, hasher.Compare(hashed, "wrong"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("1234")
	require.NoError(t, err)
	second, err := hasher.Hash("1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
