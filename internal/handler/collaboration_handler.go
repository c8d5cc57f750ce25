package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/middleware"
)

type collaborationRequest struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// AddCollaboration handles POST /collaborations. Owner only.
func (h *Handler) AddCollaboration(c *gin.Context) {
	var req collaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menambahkan kolaborasi. Mohon isi playlistId dan userId")
		return
	}

	id, err := h.collaborations.AddCollaborator(c.Request.Context(), req.PlaylistID, req.UserID, middleware.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "Kolaborasi berhasil ditambahkan", gin.H{"collaborationId": id})
}

// RemoveCollaboration handles DELETE /collaborations. Owner only.
func (h *Handler) RemoveCollaboration(c *gin.Context) {
	var req collaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menghapus kolaborasi. Mohon isi playlistId dan userId")
		return
	}

	if err := h.collaborations.RemoveCollaborator(c.Request.Context(), req.PlaylistID, req.UserID, middleware.GetUserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	SuccessMessage(c, "Kolaborasi berhasil dihapus")
}
