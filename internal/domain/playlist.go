package domain

// Playlist has exactly one immutable owner. Non-owner access is granted
// through Collaboration records only.
type Playlist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"-"`

	// Username of the owner, populated by list/detail queries.
	Username string `json:"username"`
}

// PlaylistWithSongs is the detail view returned by GET /playlists/{id}/songs.
type PlaylistWithSongs struct {
	Playlist
	Songs []SongSummary `json:"songs"`
}

// Collaboration grants a user non-owner access to a playlist. A
// (playlist, user) pair is either present (collaborator) or absent.
type Collaboration struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}
