// Package worker runs the background playlist export consumer.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bagashiz/openmusic-api/internal/domain"
	"github.com/bagashiz/openmusic-api/internal/mail"
	"github.com/bagashiz/openmusic-api/internal/queue"
	"github.com/bagashiz/openmusic-api/internal/repository"
	"github.com/bagashiz/openmusic-api/pkg/logger"
	"github.com/bagashiz/openmusic-api/pkg/redisx"
)

const (
	consumeTimeout = 5 * time.Second
	requeueDelay   = time.Second
)

// exportPayload is the JSON document mailed to the target address.
type exportPayload struct {
	Playlist exportPlaylist `json:"playlist"`
}

type exportPlaylist struct {
	ID    string               `json:"id"`
	Name  string               `json:"name"`
	Songs []domain.SongSummary `json:"songs"`
}

// ExportWorker consumes export jobs from the queue, renders the playlist
// as JSON and mails it.
type ExportWorker struct {
	queue     *queue.Queue
	playlists repository.PlaylistRepository
	sender    mail.Sender
	log       logger.Logger
}

// NewExportWorker creates an export worker.
func NewExportWorker(
	q *queue.Queue,
	playlists repository.PlaylistRepository,
	sender mail.Sender,
	log logger.Logger,
) *ExportWorker {
	return &ExportWorker{
		queue:     q,
		playlists: playlists,
		sender:    sender,
		log:       log,
	}
}

// Run consumes jobs until ctx is cancelled. A job that fails transiently,
// such as on a mail outage, is requeued after a short delay; a job that
// cannot be decoded or whose playlist no longer exists is dropped with a
// log line, since retrying it can never succeed.
func (w *ExportWorker) Run(ctx context.Context) {
	w.log.Info("export worker started")
	for {
		payload, err := w.queue.Consume(ctx, consumeTimeout)
		if err != nil {
			if errors.Is(err, redisx.ErrKeyNotFound) {
				// Queue empty, wait again.
				if ctx.Err() != nil {
					w.log.Info("export worker stopped")
					return
				}
				continue
			}
			if ctx.Err() != nil {
				w.log.Info("export worker stopped")
				return
			}
			w.log.Error("consume export job", logger.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var req domain.ExportRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			w.log.Error("drop undecodable export job", logger.Error(err))
			continue
		}

		if err := w.process(ctx, req); err != nil {
			if errors.Is(err, domain.ErrPlaylistNotFound) {
				w.log.Error("drop export job for missing playlist",
					logger.String("playlist_id", req.PlaylistID),
					logger.Error(err),
				)
				continue
			}
			w.log.Error("export job failed, requeueing",
				logger.String("playlist_id", req.PlaylistID),
				logger.Error(err),
			)
			if rerr := w.queue.Requeue(ctx, payload); rerr != nil {
				w.log.Error("requeue export job", logger.Error(rerr))
			}
			select {
			case <-ctx.Done():
				w.log.Info("export worker stopped")
				return
			case <-time.After(requeueDelay):
			}
			continue
		}

		w.log.Info("playlist exported",
			logger.String("playlist_id", req.PlaylistID),
			logger.String("target_email", req.TargetEmail),
		)
	}
}

func (w *ExportWorker) process(ctx context.Context, req domain.ExportRequest) error {
	playlist, err := w.playlists.GetByID(ctx, req.PlaylistID)
	if err != nil {
		return err
	}
	songs, err := w.playlists.ListSongs(ctx, req.PlaylistID)
	if err != nil {
		return err
	}

	doc, err := json.Marshal(exportPayload{
		Playlist: exportPlaylist{
			ID:    playlist.ID,
			Name:  playlist.Name,
			Songs: songs,
		},
	})
	if err != nil {
		return err
	}

	return w.sender.Send(req.TargetEmail, "Ekspor Playlist: "+playlist.Name, string(doc))
}
