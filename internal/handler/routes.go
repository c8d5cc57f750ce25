package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Routes registers every API route. authRequired guards the routes that
// need an authenticated user; coversDir is served statically for album
// covers.
func (h *Handler) Routes(router *gin.Engine, authRequired gin.HandlerFunc, coversDir string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	albums := router.Group("/albums")
	{
		albums.POST("", h.CreateAlbum)
		albums.GET("", h.ListAlbums)
		albums.GET("/:id", h.GetAlbum)
		albums.PUT("/:id", h.UpdateAlbum)
		albums.DELETE("/:id", h.DeleteAlbum)
		albums.POST("/:id/covers", h.UploadCover)
		albums.GET("/:id/likes", h.GetAlbumLikes)
		albums.POST("/:id/likes", authRequired, h.LikeAlbum)
		albums.DELETE("/:id/likes", authRequired, h.UnlikeAlbum)
	}
	router.Static("/upload/images", coversDir)

	songs := router.Group("/songs")
	{
		songs.POST("", h.CreateSong)
		songs.GET("", h.ListSongs)
		songs.GET("/:id", h.GetSong)
		songs.PUT("/:id", h.UpdateSong)
		songs.DELETE("/:id", h.DeleteSong)
	}

	users := router.Group("/users")
	{
		users.POST("", h.RegisterUser)
		users.GET("", h.SearchUsers)
		users.GET("/:id", h.GetUser)
	}

	auth := router.Group("/authentications")
	{
		auth.POST("", h.Login)
		auth.PUT("", h.Refresh)
		auth.DELETE("", h.Logout)
	}

	playlists := router.Group("/playlists", authRequired)
	{
		playlists.POST("", h.CreatePlaylist)
		playlists.GET("", h.ListPlaylists)
		playlists.DELETE("/:id", h.DeletePlaylist)
		playlists.POST("/:id/songs", h.AddPlaylistSong)
		playlists.GET("/:id/songs", h.GetPlaylistSongs)
		playlists.DELETE("/:id/songs", h.RemovePlaylistSong)
		playlists.GET("/:id/activities", h.GetPlaylistActivities)
	}

	collaborations := router.Group("/collaborations", authRequired)
	{
		collaborations.POST("", h.AddCollaboration)
		collaborations.DELETE("", h.RemoveCollaboration)
	}

	router.POST("/export/playlists/:id", authRequired, h.ExportPlaylist)
}
