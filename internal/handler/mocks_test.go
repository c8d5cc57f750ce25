package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagashiz/openmusic-api/internal/domain"
)

type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	return m.Called(ctx, album).Error(0)
}

func (m *MockAlbumRepository) List(ctx context.Context) ([]domain.Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) ListSongs(ctx context.Context, albumID string) ([]domain.SongSummary, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

func (m *MockAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	return m.Called(ctx, album).Error(0)
}

func (m *MockAlbumRepository) UpdateCover(ctx context.Context, id, coverURL string) error {
	return m.Called(ctx, id, coverURL).Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *domain.AlbumLike) error {
	return m.Called(ctx, like).Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, albumID string) error {
	return m.Called(ctx, userID, albumID).Error(0)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, albumID string) (bool, error) {
	args := m.Called(ctx, userID, albumID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByAlbum(ctx context.Context, albumID string) (int, error) {
	args := m.Called(ctx, albumID)
	return args.Int(0), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) GetOwner(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlaylistRepository) AddSong(ctx context.Context, id, playlistID, songID string) error {
	return m.Called(ctx, id, playlistID, songID).Error(0)
}

func (m *MockPlaylistRepository) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

func (m *MockPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID string) error {
	return m.Called(ctx, playlistID, songID).Error(0)
}

type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *MockSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

func (m *MockSongRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *domain.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCollaborationRepository struct {
	mock.Mock
}

func (m *MockCollaborationRepository) Create(ctx context.Context, collaboration *domain.Collaboration) error {
	return m.Called(ctx, collaboration).Error(0)
}

func (m *MockCollaborationRepository) Delete(ctx context.Context, playlistID, userID string) error {
	return m.Called(ctx, playlistID, userID).Error(0)
}

func (m *MockCollaborationRepository) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) ListByPlaylist(ctx context.Context, playlistID string) ([]domain.Activity, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SearchByUsername(ctx context.Context, username string) ([]domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Add(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
