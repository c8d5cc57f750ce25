package domain

import "time"

// Song is a catalog song, optionally attached to an album.
type Song struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Genre     string    `json:"genre"`
	Performer string    `json:"performer"`
	Duration  *int      `json:"duration"`
	AlbumID   *string   `json:"albumId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SongSummary is the list/embed projection of a song.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// SongFilter narrows song listings. Empty fields match everything;
// both filters are case-insensitive substring matches.
type SongFilter struct {
	Title     string
	Performer string
}
