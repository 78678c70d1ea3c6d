package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "complyd/pkg/domain-errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-signing-key", "complyd", "compliance-api")

	token, err := svc.GenerateAccessToken("officer-7", "session-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "officer-7", claims.OfficerID)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-signing-key", "complyd", "compliance-api")

	token, err := svc.GenerateAccessToken("officer-7", "session-1", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func TestJWTService_RejectsForeignKey(t *testing.T) {
	issuer := NewJWTService("key-a", "complyd", "compliance-api")
	verifier := NewJWTService("key-b", "complyd", "compliance-api")

	token, err := issuer.GenerateAccessToken("officer-7", "session-1", time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
