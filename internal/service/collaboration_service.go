package service

import (
	"context"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/repository"

	"github.com/google/uuid"
)

// CollaborationService grants and revokes playlist collaborator access.
// Only the playlist owner may manage collaborators.
type CollaborationService struct {
	collaborations repository.CollaborationRepository
	playlists      *PlaylistService
	users          repository.UserRepository
}

// NewCollaborationService creates a collaboration service.
func NewCollaborationService(
	collaborations repository.CollaborationRepository,
	playlists *PlaylistService,
	users repository.UserRepository,
) *CollaborationService {
	return &CollaborationService{
		collaborations: collaborations,
		playlists:      playlists,
		users:          users,
	}
}

// AddCollaborator grants userID access to the playlist and returns the
// grant's ID. The grantee must be an existing account.
func (s *CollaborationService) AddCollaborator(ctx context.Context, playlistID, userID, ownerID string) (string, error) {
	if err := s.playlists.VerifyOwner(ctx, playlistID, ownerID); err != nil {
		return "", err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return "", err
	}

	collaboration := &domain.Collaboration{
		ID:         "collaboration-" + uuid.New().String(),
		PlaylistID: playlistID,
		UserID:     userID,
	}
	if err := s.collaborations.Create(ctx, collaboration); err != nil {
		return "", err
	}
	return collaboration.ID, nil
}

// RemoveCollaborator revokes userID's access to the playlist.
func (s *CollaborationService) RemoveCollaborator(ctx context.Context, playlistID, userID, ownerID string) error {
	if err := s.playlists.VerifyOwner(ctx, playlistID, ownerID); err != nil {
		return err
	}
	return s.collaborations.Delete(ctx, playlistID, userID)
}
