package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Fullname string `json:"fullname" binding:"required"`
}

// RegisterUser handles POST /users.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Gagal menambahkan user. Mohon lengkapi data user")
		return
	}

	id, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		h.handleError(c, err)
		return
	}

	Created(c, "User berhasil ditambahkan", gin.H{"userId": id})
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"user": user})
}

// SearchUsers handles GET /users?username=.
func (h *Handler) SearchUsers(c *gin.Context) {
	users, err := h.users.SearchUsers(c.Request.Context(), c.Query("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	Success(c, gin.H{"users": users})
}
