// Package queue implements a durable work queue over a Redis list.
//
// Producers LPUSH payloads; consumers block on BRPOP. A payload that fails
// processing can be requeued, so a transient downstream outage does not
// drop work.
package queue

import (
	"context"
	"time"

	"github.com/bagashiz/openmusic-api/pkg/redisx"
)

// Queue is a named Redis-list work queue.
type Queue struct {
	client *redisx.Client
	key    string
}

// New returns a queue with the given name.
func New(client *redisx.Client, name string) *Queue {
	return &Queue{
		client: client,
		key:    redisx.ExportQueueKey(name),
	}
}

// Publish appends a payload to the queue.
func (q *Queue) Publish(ctx context.Context, payload []byte) error {
	return q.client.LPush(ctx, q.key, payload)
}

// Consume blocks up to timeout for the next payload. It returns
// redisx.ErrKeyNotFound when the wait times out with the queue empty.
func (q *Queue) Consume(ctx context.Context, timeout time.Duration) ([]byte, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key)
	if err != nil {
		return nil, err
	}
	// BRPOP returns [key, value].
	return []byte(res[1]), nil
}

// Requeue puts a payload back for another attempt.
func (q *Queue) Requeue(ctx context.Context, payload []byte) error {
	return q.client.LPush(ctx, q.key, payload)
}

// Len reports the number of pending payloads.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key)
}
