package repository

import (
	"context"

	"github.com/bagashiz/openmusic-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CollaborationRepositoryImpl implements CollaborationRepository over pgx.
type CollaborationRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository creates a collaboration repository.
func NewCollaborationRepository(db *pgxpool.Pool) CollaborationRepository {
	return &CollaborationRepositoryImpl{db: db}
}

// Create inserts a collaborator grant.
func (r *CollaborationRepositoryImpl) Create(ctx context.Context, collaboration *domain.Collaboration) error {
	query := `INSERT INTO collaborations (id, playlist_id, user_id) VALUES ($1, $2, $3)`
	tag, err := r.db.Exec(ctx, query, collaboration.ID, collaboration.PlaylistID, collaboration.UserID)
	if isUniqueViolation(err) {
		return domain.ErrCollaborationInsertFailed
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCollaborationInsertFailed
	}
	return nil
}

// Delete removes a collaborator grant.
func (r *CollaborationRepositoryImpl) Delete(ctx context.Context, playlistID, userID string) error {
	query := `DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCollaborationDeleteFailed
	}
	return nil
}

// Exists reports whether the user is a collaborator on the playlist.
func (r *CollaborationRepositoryImpl) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM collaborations WHERE playlist_id = $1 AND user_id = $2)`,
		playlistID, userID,
	).Scan(&exists)
	return exists, err
}
