// Package handler exposes the REST API over gin.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/service"
	"github.com/bagashiz/openmusic-api/pkg/logger"
)

// Handler carries every service the routes need.
type Handler struct {
	albums         *service.AlbumService
	songs          *service.SongService
	users          *service.UserService
	auth           *service.AuthService
	playlists      *service.PlaylistService
	collaborations *service.CollaborationService
	likes          *service.LikeService
	exports        *service.ExportService
	log            logger.Logger
}

// New creates the handler.
func New(
	albums *service.AlbumService,
	songs *service.SongService,
	users *service.UserService,
	auth *service.AuthService,
	playlists *service.PlaylistService,
	collaborations *service.CollaborationService,
	likes *service.LikeService,
	exports *service.ExportService,
	log logger.Logger,
) *Handler {
	return &Handler{
		albums:         albums,
		songs:          songs,
		users:          users,
		auth:           auth,
		playlists:      playlists,
		collaborations: collaborations,
		likes:          likes,
		exports:        exports,
		log:            log,
	}
}

func requestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
