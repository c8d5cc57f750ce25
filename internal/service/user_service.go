package service

import (
	"context"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/repository"
	"github.com/bagashiz/openmusic-api/pkg/crypto"

	"github.com/google/uuid"
)

// UserService manages account registration and lookup.
type UserService struct {
	users  repository.UserRepository
	hasher *crypto.PasswordHasher
}

// NewUserService creates a user service.
func NewUserService(users repository.UserRepository, hasher *crypto.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Register creates an account and returns its ID. Usernames are unique; the
// pre-check gives a friendly failure and the database constraint backs it up
// under concurrency.
func (s *UserService) Register(ctx context.Context, username, password, fullname string) (string, error) {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:       "user-" + uuid.New().String(),
		Username: username,
		Password: hash,
		Fullname: fullname,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetUser returns the account with the given ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// VerifyUserExists fails with ErrUserNotFound when no account has the given
// ID.
func (s *UserService) VerifyUserExists(ctx context.Context, id string) error {
	_, err := s.users.GetByID(ctx, id)
	return err
}

// SearchUsers returns accounts whose username contains the given fragment.
func (s *UserService) SearchUsers(ctx context.Context, username string) ([]domain.User, error) {
	return s.users.SearchByUsername(ctx, username)
}
