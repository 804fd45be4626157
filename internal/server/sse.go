package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/portal"
)

// SSEWriter frames Server-Sent Events on a flushing response.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	seq     int
}

// NewSSEWriter sets the stream headers. It fails when w cannot flush.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends data as JSON under the event name, with an increasing id.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}
	s.seq++
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.seq, event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteHeartbeat sends a comment line so idle proxies keep the stream open.
func (s *SSEWriter) WriteHeartbeat() error {
	if _, err := fmt.Fprint(s.w, ": ping\n\n"); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// subscriberBuffer bounds how far a slow stream may lag before outputs are dropped.
const subscriberBuffer = 64

// Broadcaster fans renderer output out to every connected event stream.
// Its Renderer never blocks the portal: a full subscriber loses outputs.
type Broadcaster struct {
	logger *slog.Logger

	mu   sync.Mutex
	subs map[uuid.UUID]chan portal.Output
}

// NewBroadcaster creates a broadcaster with no subscribers.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{logger: logger, subs: make(map[uuid.UUID]chan portal.Output)}
}

// Renderer returns a portal.Renderer that publishes to all subscribers.
func (b *Broadcaster) Renderer() portal.Renderer {
	return portal.SinkRenderer{Emit: b.Publish}
}

// Publish delivers o to every subscriber.
func (b *Broadcaster) Publish(o portal.Output) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		select {
		case ch <- o:
		default:
			b.logger.Warn("event stream lagging, output dropped",
				slog.String("subscriber", id.String()),
				slog.String("kind", o.Kind))
		}
	}
}

// Subscribe registers a stream. The returned func unsubscribes and closes the channel.
func (b *Broadcaster) Subscribe() (<-chan portal.Output, func()) {
	id := uuid.New()
	ch := make(chan portal.Output, subscriberBuffer)

	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the number of connected streams.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
