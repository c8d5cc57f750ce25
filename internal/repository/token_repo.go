package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepositoryImpl implements TokenRepository over pgx.
type TokenRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a refresh token repository.
func NewTokenRepository(db *pgxpool.Pool) TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// Add stores a refresh token.
func (r *TokenRepositoryImpl) Add(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO authentications (token) VALUES ($1)`, token)
	return err
}

// Exists reports whether a refresh token is still valid.
func (r *TokenRepositoryImpl) Exists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM authentications WHERE token = $1)`, token).Scan(&exists)
	return exists, err
}

// Delete revokes a refresh token.
func (r *TokenRepositoryImpl) Delete(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM authentications WHERE token = $1`, token)
	return err
}
