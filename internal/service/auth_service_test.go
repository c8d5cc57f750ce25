package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/pkg/crypto"
	"github.com/bagashiz/openmusic-api/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*AuthService, *MockUserRepository, *MockTokenRepository, *jwt.Manager) {
	t.Helper()

	users := new(MockUserRepository)
	tokens := new(MockTokenRepository)
	manager := jwt.NewManager(&jwt.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		Issuer:        "openmusic-test",
	})
	svc := NewAuthService(users, tokens, crypto.NewPasswordHasher(), manager)
	return svc, users, tokens, manager
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := crypto.NewPasswordHasher().Hash(password)
	require.NoError(t, err)
	return &domain.User{ID: "user-1", Username: "dicoding", Password: hash}
}

func TestLogin_IssuesAndPersistsTokenPair(t *testing.T) {
	svc, users, tokens, manager := newAuthFixture(t)

	users.On("GetByUsername", mock.Anything, "dicoding").Return(hashedUser(t, "secret123"), nil)
	tokens.On("Add", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	pair, err := svc.Login(context.Background(), "dicoding", "secret123")

	require.NoError(t, err)
	claims, err := manager.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture(t)

	users.On("GetByUsername", mock.Anything, "dicoding").Return(hashedUser(t, "secret123"), nil)

	_, err := svc.Login(context.Background(), "dicoding", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestLogin_UnknownUsernameFailsIdentically(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	users.On("GetByUsername", mock.Anything, "nobody").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "nobody", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefresh_RequiresRegisteredToken(t *testing.T) {
	svc, _, tokens, manager := newAuthFixture(t)

	refresh, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// Valid signature but revoked server-side.
	tokens.On("Exists", mock.Anything, refresh).Return(false, nil)

	_, err = svc.Refresh(context.Background(), refresh)

	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
}

func TestRefresh_RejectsAccessTokenAsRefresh(t *testing.T) {
	svc, _, tokens, manager := newAuthFixture(t)

	access, err := manager.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)

	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	tokens.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	svc, _, tokens, manager := newAuthFixture(t)

	refresh, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	tokens.On("Exists", mock.Anything, refresh).Return(true, nil)

	access, err := svc.Refresh(context.Background(), refresh)

	require.NoError(t, err)
	claims, err := manager.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _, tokens, _ := newAuthFixture(t)

	tokens.On("Exists", mock.Anything, "some-refresh").Return(true, nil)
	tokens.On("Delete", mock.Anything, "some-refresh").Return(nil)

	err := svc.Logout(context.Background(), "some-refresh")

	assert.NoError(t, err)
	tokens.AssertExpectations(t)
}

func TestLogout_UnknownToken(t *testing.T) {
	svc, _, tokens, _ := newAuthFixture(t)

	tokens.On("Exists", mock.Anything, "bogus").Return(false, nil)

	err := svc.Logout(context.Background(), "bogus")

	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	tokens.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, crypto.NewPasswordHasher())

	users.On("UsernameExists", mock.Anything, "dicoding").Return(true, nil)

	_, err := svc.Register(context.Background(), "dicoding", "secret123", "Dicoding Indonesia")

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_HashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, crypto.NewPasswordHasher())

	users.On("UsernameExists", mock.Anything, "dicoding").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "dicoding" && u.Password != "secret123" && u.Password != ""
	})).Return(nil)

	id, err := svc.Register(context.Background(), "dicoding", "secret123", "Dicoding Indonesia")

	require.NoError(t, err)
	assert.Contains(t, id, "user-")
	users.AssertExpectations(t)
}
