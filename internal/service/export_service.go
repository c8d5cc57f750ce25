package service

import (
	"context"
	"encoding/json"

	"github.com/bagashiz/openmusic-api/internal/domain"
)

// Publisher enqueues export jobs. *queue.Queue satisfies it.
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
}

// ExportService accepts playlist export requests and hands them to the
// background worker through the queue.
type ExportService struct {
	playlists *PlaylistService
	publisher Publisher
}

// NewExportService creates an export service.
func NewExportService(playlists *PlaylistService, publisher Publisher) *ExportService {
	return &ExportService{playlists: playlists, publisher: publisher}
}

// ExportPlaylist queues an export of the playlist to targetEmail. Owner or
// collaborator; the work itself happens asynchronously.
func (s *ExportService) ExportPlaylist(ctx context.Context, playlistID, targetEmail, userID string) error {
	if err := s.playlists.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}

	payload, err := json.Marshal(domain.ExportRequest{
		PlaylistID:  playlistID,
		TargetEmail: targetEmail,
	})
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, payload)
}
