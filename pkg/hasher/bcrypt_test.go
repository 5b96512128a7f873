package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("verySecurePassword")
	require.NoError(t, err)
	assert.NotEqual(t, "verySecurePassword", hash)

	assert.NoError(t, h.Compare(hash, "verySecurePassword"))
	assert.Error(t, h.Compare(hash, "wrongPassword1"))
}

func TestNewBcrypt_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcrypt(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}

func TestBcrypt_HashRejectsOverlongPassword(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("é", 40))

	require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	assert.Equal(t, 1, strings.Count(err.Error(), "hash password:"))
}
