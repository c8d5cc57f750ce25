// Package repository implements durable storage over PostgreSQL.
//
// Repositories translate store-level outcomes (no rows found, zero rows
// affected, unique violations) into domain errors so services only deal in
// domain terms. Transport errors pass through untranslated.
package repository

import (
	"context"

	"github.com/bagashiz/openmusic-api/internal/domain"
)

// AlbumRepository stores albums.
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	List(ctx context.Context) ([]domain.Album, error)
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	ListSongs(ctx context.Context, albumID string) ([]domain.SongSummary, error)
	Update(ctx context.Context, album *domain.Album) error
	UpdateCover(ctx context.Context, id, coverURL string) error
	Delete(ctx context.Context, id string) error
}

// SongRepository stores songs.
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	List(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error)
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id string) error
}

// UserRepository stores user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	SearchByUsername(ctx context.Context, username string) ([]domain.User, error)
}

// TokenRepository stores issued refresh tokens.
type TokenRepository interface {
	Add(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// PlaylistRepository stores playlists and their song membership.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error)
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetOwner(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
	AddSong(ctx context.Context, id, playlistID, songID string) error
	ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error)
	RemoveSong(ctx context.Context, playlistID, songID string) error
}

// CollaborationRepository stores collaborator grants. It is the
// collaboration registry the playlist access checks fall back to.
type CollaborationRepository interface {
	Create(ctx context.Context, collaboration *domain.Collaboration) error
	Delete(ctx context.Context, playlistID, userID string) error
	Exists(ctx context.Context, playlistID, userID string) (bool, error)
}

// ActivityRepository stores playlist song-mutation log entries.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	ListByPlaylist(ctx context.Context, playlistID string) ([]domain.Activity, error)
}

// LikeRepository stores album likes. The database enforces uniqueness on
// (user_id, album_id).
type LikeRepository interface {
	Create(ctx context.Context, like *domain.AlbumLike) error
	Delete(ctx context.Context, userID, albumID string) error
	Exists(ctx context.Context, userID, albumID string) (bool, error)
	CountByAlbum(ctx context.Context, albumID string) (int, error)
}
