package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/repository"
	"github.com/bagashiz/openmusic-api/internal/storage"

	"github.com/google/uuid"
)

// AlbumService manages the album catalog and cover uploads.
type AlbumService struct {
	albums   repository.AlbumRepository
	files    storage.FileStorage
	coverURL string
}

// NewAlbumService creates an album service. coverURL is the public base URL
// uploaded covers are served from, without a trailing slash.
func NewAlbumService(albums repository.AlbumRepository, files storage.FileStorage, coverURL string) *AlbumService {
	return &AlbumService{
		albums:   albums,
		files:    files,
		coverURL: coverURL,
	}
}

// CreateAlbum creates an album and returns its ID.
func (s *AlbumService) CreateAlbum(ctx context.Context, name string, year int) (string, error) {
	now := time.Now()
	album := &domain.Album{
		ID:        "album-" + uuid.New().String(),
		Name:      name,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return "", err
	}
	return album.ID, nil
}

// ListAlbums returns every album in the catalog.
func (s *AlbumService) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	return s.albums.List(ctx)
}

// GetAlbum returns the album with its songs.
func (s *AlbumService) GetAlbum(ctx context.Context, id string) (*domain.AlbumWithSongs, error) {
	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	songs, err := s.albums.ListSongs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.AlbumWithSongs{Album: *album, Songs: songs}, nil
}

// UpdateAlbum replaces the album's name and year.
func (s *AlbumService) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	return s.albums.Update(ctx, &domain.Album{ID: id, Name: name, Year: year, UpdatedAt: time.Now()})
}

// DeleteAlbum deletes the album.
func (s *AlbumService) DeleteAlbum(ctx context.Context, id string) error {
	return s.albums.Delete(ctx, id)
}

// VerifyAlbumExists fails with ErrAlbumNotFound when the album does not
// exist.
func (s *AlbumService) VerifyAlbumExists(ctx context.Context, id string) error {
	_, err := s.albums.GetByID(ctx, id)
	return err
}

// UploadCover stores the cover image and points the album at its public
// URL. Content-type validation happens at the transport layer; here the
// file is opaque bytes.
func (s *AlbumService) UploadCover(ctx context.Context, albumID, filename string, r io.Reader) error {
	if err := s.VerifyAlbumExists(ctx, albumID); err != nil {
		return err
	}

	stored, err := s.files.Save(ctx, filename, r)
	if err != nil {
		return err
	}

	return s.albums.UpdateCover(ctx, albumID, fmt.Sprintf("%s/%s", s.coverURL, stored))
}
