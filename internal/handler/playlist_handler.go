package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/middleware"
)

type playlistRequest struct {
	Name string `json:"name" binding:"required"`
}

type playlistSongRequest struct {
	SongID string `json:"songId" binding:"required"`
}

// CreatePlaylist handles POST /playlists.
func (h *Handler) CreatePlaylist(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menambahkan playlist. Mohon isi nama playlist")
		return
	}

	id, err := h.playlists.CreatePlaylist(c.Request.Context(), req.Name, middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Playlist berhasil ditambahkan", gin.H{"playlistId": id})
}

// ListPlaylists handles GET /playlists. Returns playlists the caller owns
// or collaborates on.
func (h *Handler) ListPlaylists(c *gin.Context) {
	playlists, err := h.playlists.ListPlaylists(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"playlists": playlists})
}

// DeletePlaylist handles DELETE /playlists/{id}. Owner only.
func (h *Handler) DeletePlaylist(c *gin.Context) {
	if err := h.playlists.DeletePlaylist(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	SuccessMessage(c, "Playlist berhasil dihapus")
}

// AddPlaylistSong handles POST /playlists/{id}/songs.
func (h *Handler) AddPlaylistSong(c *gin.Context) {
	var req playlistSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menambahkan lagu ke playlist. Mohon isi songId")
		return
	}

	_, err := h.playlists.AddSong(c.Request.Context(), c.Param("id"), req.SongID, middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Lagu berhasil ditambahkan ke playlist", nil)
}

// GetPlaylistSongs handles GET /playlists/{id}/songs.
func (h *Handler) GetPlaylistSongs(c *gin.Context) {
	playlist, err := h.playlists.GetSongs(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"playlist": playlist})
}

// RemovePlaylistSong handles DELETE /playlists/{id}/songs.
func (h *Handler) RemovePlaylistSong(c *gin.Context) {
	var req playlistSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menghapus lagu dari playlist. Mohon isi songId")
		return
	}

	if err := h.playlists.RemoveSong(c.Request.Context(), c.Param("id"), req.SongID, middleware.GetUserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	SuccessMessage(c, "Lagu berhasil dihapus dari playlist")
}

// GetPlaylistActivities handles GET /playlists/{id}/activities.
func (h *Handler) GetPlaylistActivities(c *gin.Context) {
	playlistID := c.Param("id")

	activities, err := h.playlists.GetActivities(c.Request.Context(), playlistID, middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	Success(c, gin.H{
		"playlistId": playlistID,
		"activities": activities,
	})
}
