package service

import (
	"context"
	"errors"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/repository"
	"github.com/bagashiz/openmusic-api/pkg/crypto"
	"github.com/bagashiz/openmusic-api/pkg/jwt"
)

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService issues and rotates token pairs.
//
// Refresh tokens are JWTs and additionally persisted, so logout revokes
// them server-side: a refresh token that validates cryptographically but is
// no longer on record is rejected.
type AuthService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	hasher *crypto.PasswordHasher
	jwt    *jwt.Manager
}

// NewAuthService creates an auth service.
func NewAuthService(
	users repository.UserRepository,
	tokens repository.TokenRepository,
	hasher *crypto.PasswordHasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		jwt:    jwtManager,
	}
}

// Login verifies the credentials and returns a fresh token pair. An unknown
// username and a wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Add(ctx, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid, still-registered refresh token for a new
// access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}

	registered, err := s.tokens.Exists(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !registered {
		return "", domain.ErrInvalidRefreshToken
	}

	return s.jwt.GenerateAccessToken(claims.UserID)
}

// Logout revokes the refresh token. Revoking a token that was never issued,
// or was already revoked, fails with ErrInvalidRefreshToken.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	registered, err := s.tokens.Exists(ctx, refreshToken)
	if err != nil {
		return err
	}
	if !registered {
		return domain.ErrInvalidRefreshToken
	}
	return s.tokens.Delete(ctx, refreshToken)
}
