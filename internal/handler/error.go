package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/pkg/logger"
)

// handleError maps domain errors to HTTP responses. Anything not recognized
// is an infrastructure failure: logged and answered with the generic 500.
func (h *Handler) handleError(c *gin.Context, err error) {
	if status, ok := statusFor(err); ok {
		Fail(c, status, err.Error())
		return
	}

	h.log.WithFields(
		logger.String("request_id", requestID(c)),
		logger.String("method", c.Request.Method),
		logger.String("path", c.Request.URL.Path),
		logger.Error(err),
	).Error("request failed")
	ServerError(c)
}

func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrAlbumNotFound),
		errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPlaylistNotFound),
		errors.Is(err, domain.ErrAlbumUpdateFailed),
		errors.Is(err, domain.ErrAlbumCoverFailed),
		errors.Is(err, domain.ErrAlbumDeleteFailed),
		errors.Is(err, domain.ErrSongUpdateFailed),
		errors.Is(err, domain.ErrSongDeleteFailed),
		errors.Is(err, domain.ErrLikeDeleteFailed):
		return http.StatusNotFound, true

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, true

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, true

	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrInvalidRefreshToken),
		errors.Is(err, domain.ErrSongInvalid),
		errors.Is(err, domain.ErrAlreadyLiked),
		errors.Is(err, domain.ErrNotYetLiked),
		errors.Is(err, domain.ErrLikeInsertFailed),
		errors.Is(err, domain.ErrNotCollaborator),
		errors.Is(err, domain.ErrUnsupportedImageType),
		errors.Is(err, domain.ErrAlbumInsertFailed),
		errors.Is(err, domain.ErrSongInsertFailed),
		errors.Is(err, domain.ErrUserInsertFailed),
		errors.Is(err, domain.ErrPlaylistInsertFailed),
		errors.Is(err, domain.ErrPlaylistDeleteFailed),
		errors.Is(err, domain.ErrPlaylistSongInsertFailed),
		errors.Is(err, domain.ErrPlaylistSongDeleteFailed),
		errors.Is(err, domain.ErrCollaborationInsertFailed),
		errors.Is(err, domain.ErrCollaborationDeleteFailed),
		errors.Is(err, domain.ErrActivityInsertFailed):
		return http.StatusBadRequest, true
	}
	return 0, false
}
