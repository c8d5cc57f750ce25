package domain

import "time"

// Album is a catalog album. CoverURL is empty until a cover has been uploaded.
type Album struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	CoverURL  *string   `json:"coverUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AlbumWithSongs is the detail view returned by GET /albums/{id}.
type AlbumWithSongs struct {
	Album
	Songs []SongSummary `json:"songs"`
}
