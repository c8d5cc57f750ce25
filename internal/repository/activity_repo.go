package repository

import (
	"context"

	"github.com/bagashiz/openmusic-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepositoryImpl implements ActivityRepository over pgx.
type ActivityRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates an activity repository.
func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// Create records a playlist song mutation.
func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	tag, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.PlaylistID,
		activity.SongID,
		activity.UserID,
		activity.Action,
		activity.Time,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActivityInsertFailed
	}
	return nil
}

// ListByPlaylist returns the playlist's activity log with usernames and song
// titles resolved, oldest first.
func (r *ActivityRepositoryImpl) ListByPlaylist(ctx context.Context, playlistID string) ([]domain.Activity, error) {
	query := `
		SELECT users.username, songs.title,
			playlist_song_activities.action,
			playlist_song_activities.time
		FROM playlist_song_activities
		JOIN users ON playlist_song_activities.user_id = users.id
		JOIN songs ON playlist_song_activities.song_id = songs.id
		WHERE playlist_song_activities.playlist_id = $1
		ORDER BY playlist_song_activities.time
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0)
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(&activity.Username, &activity.Title, &activity.Action, &activity.Time); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}
