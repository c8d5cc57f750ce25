package redisx

import "fmt"

// Key naming convention: {namespace}:{entity}:{id}.
const keyNamespace = "openmusic"

// AlbumLikesKey returns the cache key for an album's like count.
// Example: openmusic:album-like:album-xyz
func AlbumLikesKey(albumID string) string {
	return fmt.Sprintf("%s:album-like:%s", keyNamespace, albumID)
}

// ExportQueueKey returns the list key backing the named export queue.
// Example: openmusic:queue:export:playlists
func ExportQueueKey(queue string) string {
	return fmt.Sprintf("%s:queue:%s", keyNamespace, queue)
}
