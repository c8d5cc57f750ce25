package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bagashiz/openmusic-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SongRepositoryImpl implements SongRepository over pgx.
type SongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSongRepository creates a song repository.
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &SongRepositoryImpl{db: db}
}

// Create inserts a song.
func (r *SongRepositoryImpl) Create(ctx context.Context, song *domain.Song) error {
	query := `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	tag, err := r.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.AlbumID,
		song.CreatedAt,
		song.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongInsertFailed
	}
	return nil
}

// List returns song summaries matching the filter. Title and performer are
// case-insensitive substring matches and combine with AND.
func (r *SongRepositoryImpl) List(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error) {
	query := `SELECT id, title, performer FROM songs`
	var (
		conds []string
		args  []interface{}
	)
	if filter.Title != "" {
		args = append(args, "%"+strings.ToLower(filter.Title)+"%")
		conds = append(conds, `LOWER(title) LIKE $1`)
	}
	if filter.Performer != "" {
		args = append(args, "%"+strings.ToLower(filter.Performer)+"%")
		if len(args) == 1 {
			conds = append(conds, `LOWER(performer) LIKE $1`)
		} else {
			conds = append(conds, `LOWER(performer) LIKE $2`)
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.db.Query(ctx, query, args...)
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

// GetByID returns one song.
func (r *SongRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration, album_id, created_at, updated_at
		FROM songs
		WHERE id = $1
	`
	var song domain.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Year,
		&song.Genre,
		&song.Performer,
		&song.Duration,
		&song.AlbumID,
		&song.CreatedAt,
		&song.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// Exists reports whether a song exists.
func (r *SongRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM songs WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Update updates a song's mutable attributes.
func (r *SongRepositoryImpl) Update(ctx context.Context, song *domain.Song) error {
	query := `
		UPDATE songs
		SET title = $2, year = $3, genre = $4, performer = $5, duration = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongUpdateFailed
	}
	return nil
}

// Delete removes a song.
func (r *SongRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongDeleteFailed
	}
	return nil
}
