package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Low cost keeps the tests fast; production cost comes from config.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "Password123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
}

func TestBcryptHasher_RoundTripShortPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// Any password of length >= 1 must round-trip; length policy is enforced
	// by the identity manager, not the hasher.
	for _, password := range []string{"a", "pw", "correct horse battery staple"} {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.True(t, hasher.Check(password, hash), "password %q should verify", password)
	}
}

func TestBcryptHasher_CheckNeverPanicsOnMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// A corrupt stored hash must look exactly like a wrong password.
	assert.False(t, hasher.Check("Password123!", ""))
	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("", "also-not-a-hash"))
}

func TestBcryptHasher_SaltsAreUnique(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_ConfiguredCostIsEmbedded(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}
