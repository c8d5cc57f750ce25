package repository

import (
	"context"
	"errors"

	"github.com/bagashiz/openmusic-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaylistRepositoryImpl implements PlaylistRepository over pgx.
type PlaylistRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository creates a playlist repository.
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

// Create inserts a playlist.
func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `INSERT INTO playlists (id, name, owner) VALUES ($1, $2, $3)`
	tag, err := r.db.Exec(ctx, query, playlist.ID, playlist.Name, playlist.Owner)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistInsertFailed
	}
	return nil
}

// ListByUser returns playlists the user owns or collaborates on.
func (r *PlaylistRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error) {
	query := `
		SELECT DISTINCT playlists.id, playlists.name, users.username
		FROM playlists
		JOIN users ON users.id = playlists.owner
		LEFT JOIN collaborations ON playlists.id = collaborations.playlist_id
		WHERE playlists.owner = $1 OR collaborations.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := make([]domain.Playlist, 0)
	for rows.Next() {
		var playlist domain.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}
	return playlists, rows.Err()
}

// GetByID returns a playlist with its owner's username.
func (r *PlaylistRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	query := `
		SELECT playlists.id, playlists.name, playlists.owner, users.username
		FROM playlists
		JOIN users ON playlists.owner = users.id
		WHERE playlists.id = $1
	`
	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.Owner,
		&playlist.Username,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Exists reports whether a playlist exists.
func (r *PlaylistRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// GetOwner returns the playlist's owner user ID.
func (r *PlaylistRepositoryImpl) GetOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := r.db.QueryRow(ctx, `SELECT owner FROM playlists WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrPlaylistNotFound
	}
	if err != nil {
		return "", err
	}
	return owner, nil
}

// Delete removes a playlist. Membership rows, collaborations, and activities
// go with it via ON DELETE CASCADE.
func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistDeleteFailed
	}
	return nil
}

// AddSong adds a song to a playlist.
func (r *PlaylistRepositoryImpl) AddSong(ctx context.Context, id, playlistID, songID string) error {
	query := `INSERT INTO playlist_songs (id, playlist_id, song_id) VALUES ($1, $2, $3)`
	tag, err := r.db.Exec(ctx, query, id, playlistID, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistSongInsertFailed
	}
	return nil
}

// ListSongs returns the songs in a playlist.
func (r *PlaylistRepositoryImpl) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	query := `
		SELECT songs.id, songs.title, songs.performer
		FROM playlist_songs
		JOIN songs ON playlist_songs.song_id = songs.id
		WHERE playlist_songs.playlist_id = $1
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := make([]domain.SongSummary, 0)
	for rows.Next() {
		var song domain.SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// RemoveSong removes a song from a playlist.
func (r *PlaylistRepositoryImpl) RemoveSong(ctx context.Context, playlistID, songID string) error {
	query := `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistSongDeleteFailed
	}
	return nil
}
