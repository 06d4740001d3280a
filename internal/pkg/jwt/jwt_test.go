package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("emp-123", "employee")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-123", claims["employee_id"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("emp-123", "employee")
	assert.Error(t, err)
}
