package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/middleware"
)

// maxCoverSize bounds cover uploads to 500 KB.
const maxCoverSize = 512000

var allowedCoverTypes = map[string]bool{
	"image/apng": true,
	"image/avif": true,
	"image/gif":  true,
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type albumRequest struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required"`
}

// CreateAlbum handles POST /albums.
func (h *Handler) CreateAlbum(c *gin.Context) {
	var req albumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menambahkan album. Mohon isi nama dan tahun album")
		return
	}

	id, err := h.albums.CreateAlbum(c.Request.Context(), req.Name, req.Year)
	if err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Album berhasil ditambahkan", gin.H{"albumId": id})
}

// ListAlbums handles GET /albums.
func (h *Handler) ListAlbums(c *gin.Context) {
	albums, err := h.albums.ListAlbums(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"albums": albums})
}

// GetAlbum handles GET /albums/{id}. The album is returned with its songs.
func (h *Handler) GetAlbum(c *gin.Context) {
	album, err := h.albums.GetAlbum(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"album": album})
}

// UpdateAlbum handles PUT /albums/{id}.
func (h *Handler) UpdateAlbum(c *gin.Context) {
	var req albumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal memperbarui album. Mohon isi nama dan tahun album")
		return
	}

	if err := h.albums.UpdateAlbum(c.Request.Context(), c.Param("id"), req.Name, req.Year); err != nil {
		h.handleError(c, err)
		return
	}

	SuccessMessage(c, "Album berhasil diperbarui")
}

// DeleteAlbum handles DELETE /albums/{id}.
func (h *Handler) DeleteAlbum(c *gin.Context) {
	if err := h.albums.DeleteAlbum(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	SuccessMessage(c, "Album berhasil dihapus")
}

// UploadCover handles POST /albums/{id}/covers. Accepts a single multipart
// "cover" part that must be an image.
func (h *Handler) UploadCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		Fail(c, http.StatusBadRequest, "Gagal mengunggah sampul. Mohon sertakan berkas cover")
		return
	}
	if file.Size > maxCoverSize {
		Fail(c, http.StatusRequestEntityTooLarge, "Payload content length greater than maximum allowed: 512000")
		return
	}
	if !allowedCoverTypes[file.Header.Get("Content-Type")] {
		Fail(c, http.StatusBadRequest, domain.ErrUnsupportedImageType.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer src.Close()

	if err := h.albums.UploadCover(c.Request.Context(), c.Param("id"), file.Filename, src); err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Sampul berhasil diunggah", nil)
}

// LikeAlbum handles POST /albums/{id}/likes.
func (h *Handler) LikeAlbum(c *gin.Context) {
	albumID := c.Param("id")

	// Liking a missing album is a 404, not a dangling row.
	if err := h.albums.VerifyAlbumExists(c.Request.Context(), albumID); err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.likes.LikeAlbum(c.Request.Context(), middleware.GetUserID(c), albumID); err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Berhasil menyukai album", nil)
}

// UnlikeAlbum handles DELETE /albums/{id}/likes.
func (h *Handler) UnlikeAlbum(c *gin.Context) {
	if err := h.likes.UnlikeAlbum(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	SuccessMessage(c, "Berhasil batal menyukai album")
}

// GetAlbumLikes handles GET /albums/{id}/likes. X-Data-Source reports
// whether the count came from the cache or the store.
func (h *Handler) GetAlbumLikes(c *gin.Context) {
	count, source, err := h.likes.GetAlbumLikes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("X-Data-Source", string(source))
	Success(c, gin.H{"likes": count})
}
