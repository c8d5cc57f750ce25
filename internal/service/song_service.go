package service

import (
	"context"
	"time"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/repository"

	"github.com/google/uuid"
)

// SongService manages the song catalog.
type SongService struct {
	songs repository.SongRepository
}

// NewSongService creates a song service.
func NewSongService(songs repository.SongRepository) *SongService {
	return &SongService{songs: songs}
}

// CreateSong creates a song and returns its ID. Duration and album are
// optional.
func (s *SongService) CreateSong(ctx context.Context, song *domain.Song) (string, error) {
	song.ID = "song-" + uuid.New().String()
	song.CreatedAt = time.Now()
	song.UpdatedAt = song.CreatedAt
	if err := s.songs.Create(ctx, song); err != nil {
		return "", err
	}
	return song.ID, nil
}

// ListSongs returns song summaries matching the filter.
func (s *SongService) ListSongs(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error) {
	return s.songs.List(ctx, filter)
}

// GetSong returns a song by ID.
func (s *SongService) GetSong(ctx context.Context, id string) (*domain.Song, error) {
	return s.songs.GetByID(ctx, id)
}

// UpdateSong replaces the song's fields.
func (s *SongService) UpdateSong(ctx context.Context, song *domain.Song) error {
	song.UpdatedAt = time.Now()
	return s.songs.Update(ctx, song)
}

// DeleteSong deletes the song.
func (s *SongService) DeleteSong(ctx context.Context, id string) error {
	return s.songs.Delete(ctx, id)
}
