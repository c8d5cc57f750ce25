package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/repository"

	"github.com/google/uuid"
)

// PlaylistService manages playlists and decides who may touch them.
//
// Access rules: the owner may do anything; a collaborator may read the
// playlist and mutate its songs; everyone else is rejected. Existence is
// checked before ownership, so a missing playlist is always reported as not
// found rather than as a permission problem.
type PlaylistService struct {
	playlists      repository.PlaylistRepository
	songs          repository.SongRepository
	collaborations repository.CollaborationRepository
	activities     repository.ActivityRepository
}

// NewPlaylistService creates a playlist service.
func NewPlaylistService(
	playlists repository.PlaylistRepository,
	songs repository.SongRepository,
	collaborations repository.CollaborationRepository,
	activities repository.ActivityRepository,
) *PlaylistService {
	return &PlaylistService{
		playlists:      playlists,
		songs:          songs,
		collaborations: collaborations,
		activities:     activities,
	}
}

// CreatePlaylist creates a playlist owned by owner and returns its ID.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, name, owner string) (string, error) {
	playlist := &domain.Playlist{
		ID:    "playlist-" + uuid.New().String(),
		Name:  name,
		Owner: owner,
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return "", err
	}
	return playlist.ID, nil
}

// ListPlaylists returns the playlists userID owns or collaborates on.
func (s *PlaylistService) ListPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error) {
	return s.playlists.ListByUser(ctx, userID)
}

// DeletePlaylist deletes a playlist. Owner only.
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, userID string) error {
	if err := s.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, playlistID)
}

// VerifyPlaylistExists fails with ErrPlaylistNotFound when the playlist does
// not exist.
func (s *PlaylistService) VerifyPlaylistExists(ctx context.Context, playlistID string) error {
	exists, err := s.playlists.Exists(ctx, playlistID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

// VerifyOwner fails with ErrPlaylistNotFound when the playlist does not
// exist and with ErrForbidden when userID is not its owner.
func (s *PlaylistService) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	if err := s.VerifyPlaylistExists(ctx, playlistID); err != nil {
		return err
	}

	owner, err := s.playlists.GetOwner(ctx, playlistID)
	if err != nil {
		return err
	}
	if owner != userID {
		return domain.ErrForbidden
	}
	return nil
}

// VerifyAccess allows the owner and registered collaborators.
//
// A missing playlist propagates immediately. When the ownership check fails
// with ErrForbidden the collaboration registry gets the final say; if it
// denies access for any reason, including its own errors, the original
// ErrForbidden is what the caller sees. The registry's errors never leak.
func (s *PlaylistService) VerifyAccess(ctx context.Context, playlistID, userID string) error {
	err := s.VerifyOwner(ctx, playlistID, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrForbidden) {
		// ErrPlaylistNotFound or an infrastructure failure
		return err
	}

	if ok, cerr := s.collaborations.Exists(ctx, playlistID, userID); cerr == nil && ok {
		return nil
	}
	return err
}

// AddSong adds a song to the playlist and records an "add" activity. The
// song must exist; the caller must be owner or collaborator.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, songID, userID string) (string, error) {
	exists, err := s.songs.Exists(ctx, songID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrSongInvalid
	}

	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return "", err
	}

	id := "playlist_song-" + uuid.New().String()
	if err := s.playlists.AddSong(ctx, id, playlistID, songID); err != nil {
		return "", err
	}

	if err := s.recordActivity(ctx, playlistID, songID, userID, domain.ActivityAdd); err != nil {
		return "", err
	}
	return id, nil
}

// GetSongs returns the playlist with its songs. Owner or collaborator only.
func (s *PlaylistService) GetSongs(ctx context.Context, playlistID, userID string) (*domain.PlaylistWithSongs, error) {
	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	songs, err := s.playlists.ListSongs(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	return &domain.PlaylistWithSongs{Playlist: *playlist, Songs: songs}, nil
}

// RemoveSong removes a song from the playlist and records a "delete"
// activity. Owner or collaborator only.
func (s *PlaylistService) RemoveSong(ctx context.Context, playlistID, songID, userID string) error {
	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.playlists.RemoveSong(ctx, playlistID, songID); err != nil {
		return err
	}
	return s.recordActivity(ctx, playlistID, songID, userID, domain.ActivityDelete)
}

// GetActivities returns the playlist's song-mutation log. Owner or
// collaborator only.
func (s *PlaylistService) GetActivities(ctx context.Context, playlistID, userID string) ([]domain.Activity, error) {
	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	return s.activities.ListByPlaylist(ctx, playlistID)
}

func (s *PlaylistService) recordActivity(ctx context.Context, playlistID, songID, userID, action string) error {
	return s.activities.Create(ctx, &domain.Activity{
		ID:         "activity-" + uuid.New().String(),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       time.Now(),
	})
}
