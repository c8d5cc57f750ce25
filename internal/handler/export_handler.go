package handler

import (
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/middleware"
)

type exportRequest struct {
	TargetEmail string `json:"targetEmail" binding:"required"`
}

// ExportPlaylist handles POST /export/playlists/{id}. The export runs in
// the background; the 201 only acknowledges the request.
func (h *Handler) ExportPlaylist(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal mengekspor playlist. Mohon isi targetEmail")
		return
	}
	if _, err := mail.ParseAddress(req.TargetEmail); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal mengekspor playlist. targetEmail tidak valid")
		return
	}

	err := h.exports.ExportPlaylist(c.Request.Context(), c.Param("id"), req.TargetEmail, middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Permintaan Anda sedang kami proses", nil)
}
