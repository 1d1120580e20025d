package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pass", 100)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-hash", "pass")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
