package repository

import (
	"context"
	"errors"

	"github.com/bagashiz/openmusic-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AlbumRepositoryImpl implements AlbumRepository over pgx.
type AlbumRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAlbumRepository creates an album repository.
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &AlbumRepositoryImpl{db: db}
}

// Create inserts an album.
func (r *AlbumRepositoryImpl) Create(ctx context.Context, album *domain.Album) error {
	query := `
		INSERT INTO albums (id, name, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	tag, err := r.db.Exec(ctx, query,
		album.ID,
		album.Name,
		album.Year,
		album.CreatedAt,
		album.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumInsertFailed
	}
	return nil
}

// List returns all albums.
func (r *AlbumRepositoryImpl) List(ctx context.Context) ([]domain.Album, error) {
	query := `
		SELECT id, name, year, cover_url, created_at, updated_at
		FROM albums
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []domain.Album
	for rows.Next() {
		var album domain.Album
		if err := rows.Scan(
			&album.ID,
			&album.Name,
			&album.Year,
			&album.CoverURL,
			&album.CreatedAt,
			&album.UpdatedAt,
		); err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, rows.Err()
}

// GetByID returns one album.
func (r *AlbumRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	query := `
		SELECT id, name, year, cover_url, created_at, updated_at
		FROM albums
		WHERE id = $1
	`
	var album domain.Album
	err := r.db.QueryRow(ctx, query, id).Scan(
		&album.ID,
		&album.Name,
		&album.Year,
		&album.CoverURL,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// ListSongs returns the songs attached to an album.
func (r *AlbumRepositoryImpl) ListSongs(ctx context.Context, albumID string) ([]domain.SongSummary, error) {
	query := `SELECT id, title, performer FROM songs WHERE album_id = $1`
	rows, err := r.db.Query(ctx, query, albumID)
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

// Update updates name and year.
func (r *AlbumRepositoryImpl) Update(ctx context.Context, album *domain.Album) error {
	query := `UPDATE albums SET name = $2, year = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year, album.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumUpdateFailed
	}
	return nil
}

// UpdateCover sets the album's cover URL.
func (r *AlbumRepositoryImpl) UpdateCover(ctx context.Context, id, coverURL string) error {
	query := `UPDATE albums SET cover_url = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, coverURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumCoverFailed
	}
	return nil
}

// Delete removes an album.
func (r *AlbumRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumDeleteFailed
	}
	return nil
}
