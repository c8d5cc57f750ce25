package service

import (
	"context"
	"strconv"
	"time"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/repository"
	"github.com/bagashiz/openmusic-api/pkg/logger"
	"github.com/bagashiz/openmusic-api/pkg/redisx"

	"github.com/google/uuid"
)

// Cache is the subset of the Redis client the like service needs.
// *redisx.Client satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// LikeService maintains album likes with a cache-aside count.
//
// Writes invalidate the cached count rather than adjusting it in place, so
// concurrent likers never race on a read-modify-write of the cache. Reads
// repopulate the cache from the authoritative COUNT with a bounded TTL.
type LikeService struct {
	likes repository.LikeRepository
	cache Cache
	ttl   time.Duration
	log   logger.Logger
}

// NewLikeService creates a like service. ttl bounds cached count lifetime.
func NewLikeService(likes repository.LikeRepository, cache Cache, ttl time.Duration, log logger.Logger) *LikeService {
	return &LikeService{
		likes: likes,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// LikeAlbum records that userID likes albumID.
//
// The existence pre-check gives a friendly failure for the common case; the
// database unique constraint on (user_id, album_id) is what actually
// guarantees at most one row under concurrency. The cached count is deleted
// only after the insert is confirmed.
func (s *LikeService) LikeAlbum(ctx context.Context, userID, albumID string) error {
	liked, err := s.likes.Exists(ctx, userID, albumID)
	if err != nil {
		return err
	}
	if liked {
		return domain.ErrAlreadyLiked
	}

	like := &domain.AlbumLike{
		ID:      "like-" + uuid.New().String(),
		UserID:  userID,
		AlbumID: albumID,
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return err
	}

	return s.cache.Delete(ctx, redisx.AlbumLikesKey(albumID))
}

// UnlikeAlbum removes userID's like of albumID and invalidates the cached
// count.
func (s *LikeService) UnlikeAlbum(ctx context.Context, userID, albumID string) error {
	liked, err := s.likes.Exists(ctx, userID, albumID)
	if err != nil {
		return err
	}
	if !liked {
		return domain.ErrNotYetLiked
	}

	if err := s.likes.Delete(ctx, userID, albumID); err != nil {
		return err
	}

	return s.cache.Delete(ctx, redisx.AlbumLikesKey(albumID))
}

// GetAlbumLikes returns the album's like count and where it came from.
//
// Any failure on the cache read path, missing key or connection error alike,
// is treated as a miss and answered from the database. Repopulating the
// cache is best effort; a failed Set never fails the read.
func (s *LikeService) GetAlbumLikes(ctx context.Context, albumID string) (int, domain.CountSource, error) {
	key := redisx.AlbumLikesKey(albumID)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		if count, err := strconv.Atoi(cached); err == nil {
			return count, domain.SourceCache, nil
		}
		// Unparseable entry: drop it and fall through to the store.
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.Warn("failed to drop malformed like count", logger.String("album_id", albumID), logger.Error(err))
		}
	}

	count, err := s.likes.CountByAlbum(ctx, albumID)
	if err != nil {
		return 0, "", err
	}

	if err := s.cache.Set(ctx, key, strconv.Itoa(count), s.ttl); err != nil {
		s.log.Warn("failed to cache like count", logger.String("album_id", albumID), logger.Error(err))
	}
	return count, domain.SourceStore, nil
}
