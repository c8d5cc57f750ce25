package repository

import (
	"context"

	"github.com/bagashiz/openmusic-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepositoryImpl implements LikeRepository over pgx.
type LikeRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates an album like repository.
func NewLikeRepository(db *pgxpool.Pool) LikeRepository {
	return &LikeRepositoryImpl{db: db}
}

// Create inserts a like. The unique constraint on (user_id, album_id) is the
// real guard against a concurrent double like; a violation maps to
// ErrAlreadyLiked.
func (r *LikeRepositoryImpl) Create(ctx context.Context, like *domain.AlbumLike) error {
	query := `INSERT INTO user_album_likes (id, user_id, album_id) VALUES ($1, $2, $3)`
	tag, err := r.db.Exec(ctx, query, like.ID, like.UserID, like.AlbumID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyLiked
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLikeInsertFailed
	}
	return nil
}

// Delete removes a like.
func (r *LikeRepositoryImpl) Delete(ctx context.Context, userID, albumID string) error {
	query := `DELETE FROM user_album_likes WHERE user_id = $1 AND album_id = $2`
	tag, err := r.db.Exec(ctx, query, userID, albumID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLikeDeleteFailed
	}
	return nil
}

// Exists reports whether the user has liked the album.
func (r *LikeRepositoryImpl) Exists(ctx context.Context, userID, albumID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_album_likes WHERE user_id = $1 AND album_id = $2)`,
		userID, albumID,
	).Scan(&exists)
	return exists, err
}

// CountByAlbum returns the authoritative like count for an album.
func (r *LikeRepositoryImpl) CountByAlbum(ctx context.Context, albumID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_album_likes WHERE album_id = $1`,
		albumID,
	).Scan(&count)
	return count, err
}
