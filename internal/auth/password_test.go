package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := HashPassword("S3curePass!", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("S3curePass!", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salting should make repeated hashes differ")

	ok, err := VerifyPassword("S3curePass!", first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("S3curePass!", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("", bcrypt.MinCost)
	assert.Error(t, err)
}

func TestVerifyPasswordMismatch(t *testing.T) {
	digest, err := HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := VerifyPassword("wrong-horse", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordIsCaseSensitive(t *testing.T) {
	digest, err := HashPassword("Password123", bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := VerifyPassword("password123", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	ok, err := VerifyPassword("anything", "not-a-bcrypt-digest")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordEmptyInputs(t *testing.T) {
	_, err := VerifyPassword("", "some-digest")
	assert.Error(t, err)

	_, err = VerifyPassword("some-password", "")
	assert.Error(t, err)
}
