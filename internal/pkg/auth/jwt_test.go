package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	id := uuid.New()

	token, expiresIn, err := svc.GenerateAccessToken(Subject{ID: id, Email: "a@nec.edu.in", Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "ADMIN", claims.RoleType)
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "one", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "two", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateAccessToken(Subject{ID: uuid.New(), Role: "STUDENT"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "s", AccessTokenExp: -time.Minute})
	token, _, err := svc.GenerateAccessToken(Subject{ID: uuid.New(), Role: "STUDENT"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	tok, err = ExtractBearerToken("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	_, err = ExtractBearerToken("Bearer nope")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret#1")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "secret#1"))
	assert.False(t, CheckPassword(hash, "secret#2"))
}
