package domain

// AlbumLike records that a user likes an album. The database enforces
// uniqueness on (user_id, album_id); the service-level pre-check is only an
// optimization.
type AlbumLike struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	AlbumID string `json:"albumId"`
}

// CountSource tags where a like count was read from.
type CountSource string

const (
	SourceCache CountSource = "cache"
	SourceStore CountSource = "store"
)
