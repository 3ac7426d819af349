package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Ademola7/BlogApi/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/Ademola7/BlogApi/internal/errors"
)

type TokenGenerator interface {
	IssueAccess(userID string) (string, error)
	IssueRefresh(userID string) (string, error)
	VerifyAccess(tokenString string) (string, error)
	VerifyRefresh(tokenString string) (string, error)
}

// TokenService issues and verifies signed access and refresh tokens. The two
// token kinds use independent secrets: a leaked access token can never be
// replayed to mint refresh tokens, and vice versa.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// IssueAccess signs a short-lived access token for the given user.
func (ts *TokenService) IssueAccess(userID string) (string, error) {
	return ts.sign(userID, ts.AccessTokenSecret, ts.AccessTokenExpiry)
}

// IssueRefresh signs a long-lived refresh token for the given user.
func (ts *TokenService) IssueRefresh(userID string) (string, error) {
	return ts.sign(userID, ts.RefreshTokenSecret, ts.RefreshTokenExpiry)
}

func (ts *TokenService) sign(userID, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccess validates an access token and returns its subject.
func (ts *TokenService) VerifyAccess(tokenString string) (string, error) {
	return verify(tokenString, ts.AccessTokenSecret)
}

// VerifyRefresh validates a refresh token and returns its subject.
func (ts *TokenService) VerifyRefresh(tokenString string) (string, error) {
	return verify(tokenString, ts.RefreshTokenSecret)
}

func verify(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	// Callers never learn whether the token was expired, malformed or signed
	// with the wrong key.
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.Subject, nil
}
