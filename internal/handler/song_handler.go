package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/domain"
)

type songRequest struct {
	Title     string  `json:"title" binding:"required"`
	Year      int     `json:"year" binding:"required"`
	Genre     string  `json:"genre" binding:"required"`
	Performer string  `json:"performer" binding:"required"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

// CreateSong handles POST /songs.
func (h *Handler) CreateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menambahkan lagu. Mohon lengkapi data lagu")
		return
	}

	id, err := h.songs.CreateSong(c.Request.Context(), &domain.Song{
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
		AlbumID:   req.AlbumID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Lagu berhasil ditambahkan", gin.H{"songId": id})
}

// ListSongs handles GET /songs with optional title and performer filters.
func (h *Handler) ListSongs(c *gin.Context) {
	songs, err := h.songs.ListSongs(c.Request.Context(), domain.SongFilter{
		Title:     c.Query("title"),
		Performer: c.Query("performer"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"songs": songs})
}

// GetSong handles GET /songs/{id}.
func (h *Handler) GetSong(c *gin.Context) {
	song, err := h.songs.GetSong(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"song": song})
}

// UpdateSong handles PUT /songs/{id}.
func (h *Handler) UpdateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal memperbarui lagu. Mohon lengkapi data lagu")
		return
	}

	err := h.songs.UpdateSong(c.Request.Context(), &domain.Song{
		ID:        c.Param("id"),
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
		AlbumID:   req.AlbumID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	SuccessMessage(c, "Lagu berhasil diperbarui")
}

// DeleteSong handles DELETE /songs/{id}.
func (h *Handler) DeleteSong(c *gin.Context) {
	if err := h.songs.DeleteSong(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	SuccessMessage(c, "Lagu berhasil dihapus")
}
