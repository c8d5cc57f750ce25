package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagashiz/openmusic-api/internal/domain"
)

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestExportPlaylist_QueuesMessage(t *testing.T) {
	playlists := new(MockPlaylistRepository)
	pub := &capturingPublisher{}
	svc := NewExportService(
		NewPlaylistService(playlists, new(MockSongRepository), new(MockCollaborationRepository), new(MockActivityRepository)),
		pub,
	)

	playlists.On("Exists", mock.Anything, "playlist-1").Return(true, nil)
	playlists.On("GetOwner", mock.Anything, "playlist-1").Return("user-1", nil)

	err := svc.ExportPlaylist(context.Background(), "playlist-1", "someone@example.com", "user-1")

	require.NoError(t, err)
	require.Len(t, pub.payloads, 1)

	var req domain.ExportRequest
	require.NoError(t, json.Unmarshal(pub.payloads[0], &req))
	assert.Equal(t, "playlist-1", req.PlaylistID)
	assert.Equal(t, "someone@example.com", req.TargetEmail)
}

func TestExportPlaylist_StrangerForbidden(t *testing.T) {
	playlists := new(MockPlaylistRepository)
	collaborations := new(MockCollaborationRepository)
	pub := &capturingPublisher{}
	svc := NewExportService(
		NewPlaylistService(playlists, new(MockSongRepository), collaborations, new(MockActivityRepository)),
		pub,
	)

	playlists.On("Exists", mock.Anything, "playlist-1").Return(true, nil)
	playlists.On("GetOwner", mock.Anything, "playlist-1").Return("user-1", nil)
	collaborations.On("Exists", mock.Anything, "playlist-1", "user-2").Return(false, nil)

	err := svc.ExportPlaylist(context.Background(), "playlist-1", "someone@example.com", "user-2")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, pub.payloads)
}
