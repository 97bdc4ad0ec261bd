// Package notify carries user-facing status messages out of the submit flow.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/harshmriduhash/Cold-Emailer/pkg/logx"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	At          time.Time `json:"at"`
}

// Sink surfaces a notification to the user. Implementations must not block
// for long; delivery failures are theirs to log.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, n Notification)

func (f SinkFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

type multi []Sink

// Multi fans a notification out to every sink in order.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multi) Notify(ctx context.Context, n Notification) {
	for _, s := range m {
		s.Notify(ctx, n)
	}
}

// LogSink writes notifications to the process log.
type LogSink struct{}

func (LogSink) Notify(_ context.Context, n Notification) {
	fields := []any{"title", n.Title, "description", n.Description, "severity", string(n.Severity)}
	if n.Severity == SeverityDestructive {
		logx.L().Warnw("notification", fields...)
		return
	}
	logx.L().Infow("notification", fields...)
}

// Feed keeps the most recent notifications until a client drains them.
type Feed struct {
	mu    sync.Mutex
	size  int
	items []Notification
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 50
	}
	return &Feed{size: size}
}

func (f *Feed) Notify(_ context.Context, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == f.size {
		copy(f.items, f.items[1:])
		f.items = f.items[:f.size-1]
	}
	f.items = append(f.items, n)
}

// Drain returns the buffered notifications, oldest first, and empties the feed.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items
	f.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

type publisherAPI interface {
	PublishJSON(ctx context.Context, body []byte) error
}

// QueueSink publishes each notification as JSON so an external UI can show it.
type QueueSink struct {
	Pub     publisherAPI
	Timeout time.Duration
}

func NewQueueSink(pub publisherAPI) *QueueSink {
	return &QueueSink{Pub: pub, Timeout: 5 * time.Second}
}

func (q *QueueSink) Notify(ctx context.Context, n Notification) {
	body, err := json.Marshal(n)
	if err != nil {
		logx.L().Errorw("notification_marshal_error", "title", n.Title, "error", err)
		return
	}
	if q.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.Timeout)
		defer cancel()
	}
	if err := q.Pub.PublishJSON(ctx, body); err != nil {
		logx.L().Errorw("notification_publish_error", "title", n.Title, "error", err)
	}
}
