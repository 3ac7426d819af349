package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Ademola7/BlogApi/internal/auth/domain UserRepository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ademola7/BlogApi/internal/auth/domain"
	"github.com/Ademola7/BlogApi/internal/auth/dto"
	apperrors "github.com/Ademola7/BlogApi/internal/errors"
	"github.com/Ademola7/BlogApi/internal/validation"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

// SignUp registers a new user. It does not issue tokens; logging in is a
// separate step.
func (s *UserService) SignUp(ctx context.Context, input dto.SignUpInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	existingUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index still guards against a concurrent signup racing the
	// lookup above; the repository maps that to ErrEmailAlreadyInUse.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair. Unknown
// emails and wrong passwords fail identically so the endpoint cannot be used
// to enumerate registered users.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, *dto.TokenPair, error) {
	if err := validation.Struct(input); err != nil {
		return nil, nil, err
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new access/refresh pair bound
// to the same subject. The presented token is not stored server-side, so
// rotation replaces it only by convention.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenPair, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	userID, err := s.tokens.VerifyRefresh(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	return s.issuePair(userID)
}

func (s *UserService) issuePair(userID string) (*dto.TokenPair, error) {
	accessToken, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefresh(userID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
