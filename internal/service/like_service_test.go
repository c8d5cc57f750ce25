package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/pkg/logger"
	"github.com/bagashiz/openmusic-api/pkg/redisx"
)

func newLikeFixture(t *testing.T) (*LikeService, *MockLikeRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cache := redisx.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	likes := new(MockLikeRepository)
	svc := NewLikeService(likes, cache, 1800*time.Second, logger.Default())
	return svc, likes, mr
}

func TestGetAlbumLikes_MissReadsStoreAndCaches(t *testing.T) {
	svc, likes, mr := newLikeFixture(t)

	likes.On("CountByAlbum", mock.Anything, "album-1").Return(7, nil)

	count, source, err := svc.GetAlbumLikes(context.Background(), "album-1")

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.Equal(t, domain.SourceStore, source)

	cached, err := mr.Get(redisx.AlbumLikesKey("album-1"))
	require.NoError(t, err)
	assert.Equal(t, "7", cached)
	assert.InDelta(t, 1800, mr.TTL(redisx.AlbumLikesKey("album-1")).Seconds(), 1)
}

func TestGetAlbumLikes_HitServesFromCache(t *testing.T) {
	svc, likes, mr := newLikeFixture(t)

	mr.Set(redisx.AlbumLikesKey("album-1"), "42")

	count, source, err := svc.GetAlbumLikes(context.Background(), "album-1")

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.Equal(t, domain.SourceCache, source)
	likes.AssertNotCalled(t, "CountByAlbum", mock.Anything, mock.Anything)
}

func TestGetAlbumLikes_CacheDownIsAMiss(t *testing.T) {
	svc, likes, mr := newLikeFixture(t)

	mr.Close()
	likes.On("CountByAlbum", mock.Anything, "album-1").Return(3, nil)

	count, source, err := svc.GetAlbumLikes(context.Background(), "album-1")

	// A dead cache degrades the read, it never fails it.
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, domain.SourceStore, source)
}

func TestLikeAlbum_InvalidatesCachedCount(t *testing.T) {
	svc, likes, mr := newLikeFixture(t)

	mr.Set(redisx.AlbumLikesKey("album-1"), "42")
	likes.On("Exists", mock.Anything, "user-1", "album-1").Return(false, nil)
	likes.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.AlbumLike) bool {
		return l.UserID == "user-1" && l.AlbumID == "album-1"
	})).Return(nil)

	err := svc.LikeAlbum(context.Background(), "user-1", "album-1")

	assert.NoError(t, err)
	assert.False(t, mr.Exists(redisx.AlbumLikesKey("album-1")))
}

func TestLikeAlbum_DuplicateConflict(t *testing.T) {
	svc, likes, mr := newLikeFixture(t)

	mr.Set(redisx.AlbumLikesKey("album-1"), "42")
	likes.On("Exists", mock.Anything, "user-1", "album-1").Return(true, nil)

	err := svc.LikeAlbum(context.Background(), "user-1", "album-1")

	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)
	likes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	// A failed write must not invalidate.
	assert.True(t, mr.Exists(redisx.AlbumLikesKey("album-1")))
}

func TestLikeAlbum_FailedInsertSkipsInvalidation(t *testing.T) {
	svc, likes, mr := newLikeFixture(t)

	mr.Set(redisx.AlbumLikesKey("album-1"), "42")
	likes.On("Exists", mock.Anything, "user-1", "album-1").Return(false, nil)
	likes.On("Create", mock.Anything, mock.Anything).Return(domain.ErrLikeInsertFailed)

	err := svc.LikeAlbum(context.Background(), "user-1", "album-1")

	assert.ErrorIs(t, err, domain.ErrLikeInsertFailed)
	assert.True(t, mr.Exists(redisx.AlbumLikesKey("album-1")))
}

func TestUnlikeAlbum_InvalidatesCachedCount(t *testing.T) {
	svc, likes, mr := newLikeFixture(t)

	mr.Set(redisx.AlbumLikesKey("album-1"), "42")
	likes.On("Exists", mock.Anything, "user-1", "album-1").Return(true, nil)
	likes.On("Delete", mock.Anything, "user-1", "album-1").Return(nil)

	err := svc.UnlikeAlbum(context.Background(), "user-1", "album-1")

	assert.NoError(t, err)
	assert.False(t, mr.Exists(redisx.AlbumLikesKey("album-1")))
}

func TestUnlikeAlbum_NotLikedConflict(t *testing.T) {
	svc, likes, _ := newLikeFixture(t)

	likes.On("Exists", mock.Anything, "user-1", "album-1").Return(false, nil)

	err := svc.UnlikeAlbum(context.Background(), "user-1", "album-1")

	assert.ErrorIs(t, err, domain.ErrNotYetLiked)
	likes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

// countingCache records every invalidation so a whole like/unlike cycle can
// be checked for exactly one delete per confirmed write.
type countingCache struct {
	deletes int
}

func (c *countingCache) Get(context.Context, string) (string, error) {
	return "", redisx.ErrKeyNotFound
}

func (c *countingCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (c *countingCache) Delete(_ context.Context, keys ...string) error {
	c.deletes += len(keys)
	return nil
}

func TestLikeThenUnlike_InvalidatesTwice(t *testing.T) {
	cache := &countingCache{}
	likes := new(MockLikeRepository)
	svc := NewLikeService(likes, cache, 1800*time.Second, logger.Default())

	likes.On("Exists", mock.Anything, "user-1", "album-1").Return(false, nil).Once()
	likes.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	likes.On("Exists", mock.Anything, "user-1", "album-1").Return(true, nil).Once()
	likes.On("Delete", mock.Anything, "user-1", "album-1").Return(nil).Once()

	require.NoError(t, svc.LikeAlbum(context.Background(), "user-1", "album-1"))
	require.NoError(t, svc.UnlikeAlbum(context.Background(), "user-1", "album-1"))

	assert.Equal(t, 2, cache.deletes)
}

func TestGetAlbumLikes_StoreErrorPropagates(t *testing.T) {
	svc, likes, _ := newLikeFixture(t)

	storeErr := errors.New("connection refused")
	likes.On("CountByAlbum", mock.Anything, "album-1").Return(0, storeErr)

	_, _, err := svc.GetAlbumLikes(context.Background(), "album-1")

	assert.ErrorIs(t, err, storeErr)
}
