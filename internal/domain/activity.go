package domain

import "time"

// Activity actions recorded for playlist song mutations.
const (
	ActivityAdd    = "add"
	ActivityDelete = "delete"
)

// Activity is one entry in a playlist's song-mutation log.
type Activity struct {
	ID         string    `json:"-"`
	PlaylistID string    `json:"-"`
	SongID     string    `json:"-"`
	UserID     string    `json:"-"`
	Username   string    `json:"username"`
	Title      string    `json:"title"`
	Action     string    `json:"action"`
	Time       time.Time `json:"time"`
}
