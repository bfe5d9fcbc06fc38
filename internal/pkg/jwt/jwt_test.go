package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign(42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := Sign(42, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Sign(42, time.Hour)
	require.NoError(t, err)

	SetSecret("another-secret")
	defer SetSecret(defaultSecret)

	_, err = Parse(token)
	assert.Error(t, err)
}
