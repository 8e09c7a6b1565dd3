package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "admin", "s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseTokenRejects(t *testing.T) {
	good, err := GenerateToken(1, "user", "s3cret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(1, "user", "s3cret", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", good, "other"},
		{"expired", expired, "s3cret"},
		{"garbage", "not.a.jwt", "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestIdentityFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Zero(t, CurrentUserID(c))
	assert.Empty(t, CurrentRole(c))
	_, ok := CurrentClaims(c)
	assert.False(t, ok)

	SetIdentity(c, &Claims{UserID: 7, Role: "user"})
	assert.Equal(t, uint(7), CurrentUserID(c))
	assert.Equal(t, "user", CurrentRole(c))
	claims, ok := CurrentClaims(c)
	require.True(t, ok)
	assert.Equal(t, uint(7), claims.UserID)
}
