package domain

import "errors"

// Domain errors carry the user-facing message of the original OpenMusic API.
// Handlers map each sentinel to an HTTP status; anything else is treated as
// an infrastructure failure and becomes a 500.
var (
	// Albums
	ErrAlbumNotFound     = errors.New("Album tidak ditemukan")
	ErrAlbumInsertFailed = errors.New("Album gagal ditambahkan")
	ErrAlbumUpdateFailed = errors.New("Gagal memperbarui album. Id tidak ditemukan")
	ErrAlbumCoverFailed  = errors.New("Gagal memperbarui cover album. Id tidak ditemukan")
	ErrAlbumDeleteFailed = errors.New("Album gagal dihapus. Id tidak ditemukan")

	// Songs
	ErrSongNotFound     = errors.New("Lagu tidak ditemukan")
	ErrSongInvalid      = errors.New("Lagu tidak valid")
	ErrSongInsertFailed = errors.New("Lagu gagal ditambahkan")
	ErrSongUpdateFailed = errors.New("Gagal memperbarui lagu. Id tidak ditemukan")
	ErrSongDeleteFailed = errors.New("Lagu gagal dihapus. Id tidak ditemukan")

	// Users and credentials
	ErrUserNotFound       = errors.New("User tidak ditemukan")
	ErrUserInsertFailed   = errors.New("User gagal ditambahkan")
	ErrUsernameTaken      = errors.New("Gagal menambahkan user. Username sudah digunakan.")
	ErrInvalidCredentials = errors.New("Kredensial yang Anda berikan salah")
	ErrInvalidRefreshToken = errors.New("Refresh token tidak valid")

	// Playlists
	ErrPlaylistNotFound         = errors.New("Playlist tidak ditemukan")
	ErrPlaylistInsertFailed     = errors.New("Gagal menambahkan playlist")
	ErrPlaylistDeleteFailed     = errors.New("Gagal menghapus playlist")
	ErrPlaylistSongInsertFailed = errors.New("Gagal menambahkan playlist song")
	ErrPlaylistSongDeleteFailed = errors.New("Gagal menghapus playlist song")

	// Access control
	ErrForbidden = errors.New("Anda tidak memiliki akses")

	// Collaborations
	ErrCollaborationInsertFailed = errors.New("Gagal menambahkan kolaborasi")
	ErrCollaborationDeleteFailed = errors.New("Gagal menghapus kolaborasi")
	ErrNotCollaborator           = errors.New("Tidak memiliki kolaborasi")

	// Activities
	ErrActivityInsertFailed = errors.New("Aktivitas gagal ditambahkan")

	// Album likes
	ErrAlreadyLiked     = errors.New("Album sudah dilike sebelumnya")
	ErrNotYetLiked      = errors.New("Album belum dilike sebelumnya")
	ErrLikeInsertFailed = errors.New("User gagal like album")
	ErrLikeDeleteFailed = errors.New("User gagal unlike album")

	// Uploads
	ErrUnsupportedImageType = errors.New("Berkas bukan gambar yang didukung")
)
