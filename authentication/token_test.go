package authentication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DocSpot/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.App.JWTSecret = "test-secret"

	token, err := CreateToken("507f1f77bcf86cd799439011", RoleUser, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.Sub)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	config.App.JWTSecret = "test-secret"

	token, err := CreateToken("someone", RoleDoctor, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTamperedToken(t *testing.T) {
	config.App.JWTSecret = "test-secret"
	token, err := CreateToken("someone", RoleAdmin, time.Hour)
	require.NoError(t, err)

	config.App.JWTSecret = "different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
