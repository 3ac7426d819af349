package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Ademola7/BlogApi/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		accessSecret   string
		refreshSecret  string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			accessSecret:   "access-secret-key",
			refreshSecret:  "refresh-secret-key",
			accessMinutes:  60,
			refreshMinutes: 10080,
		},
		{
			name:           "short expiries",
			accessSecret:   "a",
			refreshSecret:  "r",
			accessMinutes:  1,
			refreshMinutes: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.refreshSecret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, tt.refreshSecret, ts.RefreshTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	t.Run("access token resolves to its subject", func(t *testing.T) {
		token, err := ts.IssueAccess("user-123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := ts.VerifyAccess(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", subject)
	})

	t.Run("refresh token resolves to its subject", func(t *testing.T) {
		token, err := ts.IssueRefresh("user-456")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := ts.VerifyRefresh(token)
		require.NoError(t, err)
		assert.Equal(t, "user-456", subject)
	})

	t.Run("access and refresh tokens differ for the same user", func(t *testing.T) {
		accessToken, err := ts.IssueAccess("user-789")
		require.NoError(t, err)
		refreshToken, err := ts.IssueRefresh("user-789")
		require.NoError(t, err)

		assert.NotEqual(t, accessToken, refreshToken)
	})
}

func TestTokenService_VerifyRejectsCrossSecret(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	accessToken, err := ts.IssueAccess("user-123")
	require.NoError(t, err)
	refreshToken, err := ts.IssueRefresh("user-123")
	require.NoError(t, err)

	t.Run("access token fails refresh verification", func(t *testing.T) {
		_, err := ts.VerifyRefresh(accessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("refresh token fails access verification", func(t *testing.T) {
		_, err := ts.VerifyAccess(refreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestTokenService_VerifyFailures(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage string",
			token: func(t *testing.T) string { return "not.a.token" },
		},
		{
			name:  "empty string",
			token: func(t *testing.T) string { return "" },
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "user-123",
					IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "user-123",
					IssuedAt:  jwt.NewNumericDate(time.Now()),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "unexpected signing method",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "user-123",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := ts.VerifyAccess(tt.token(t))

			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
			assert.Empty(t, subject)
		})
	}
}
