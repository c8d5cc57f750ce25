package repository

import (
	"context"
	"errors"

	"github.com/bagashiz/openmusic-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepositoryImpl implements UserRepository over pgx.
type UserRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create inserts a user. A unique violation on username maps to
// ErrUsernameTaken so a registration race still fails cleanly.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)`
	tag, err := r.db.Exec(ctx, query, user.ID, user.Username, user.Password, user.Fullname)
	if isUniqueViolation(err) {
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserInsertFailed
	}
	return nil
}

// GetByID returns one user.
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, fullname FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.Fullname)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns one user including the password hash.
func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, password, fullname FROM users WHERE username = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password, &user.Fullname)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether a username is taken.
func (r *UserRepositoryImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

// SearchByUsername returns users whose username contains the given string.
func (r *UserRepositoryImpl) SearchByUsername(ctx context.Context, username string) ([]domain.User, error) {
	query := `SELECT id, username, fullname FROM users WHERE username LIKE $1`
	rows, err := r.db.Query(ctx, query, "%"+username+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Fullname); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
