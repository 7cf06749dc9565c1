// Package eventbus provides an in-process pub/sub bus for change events.
// Writers publish after commit; subscribers process events on a single
// consumer goroutine.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// ChangeRecorded is published after a change record is persisted.
const ChangeRecorded = "change.recorded"

// ErrStopped is reported by Ping once Stop has been called.
var ErrStopped = errors.New("eventbus: stopped")

// Event describes a committed write to the asset store.
type Event struct {
	Type      string
	AssetType domain.AssetType
	Entity    string
	At        time.Time
}

// Handler processes an event. Implementations must be safe for concurrent
// calls from different goroutines.
type Handler interface {
	HandleEvent(ctx context.Context, evt Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event) error

func (f HandlerFunc) HandleEvent(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// Bus dispatches events from a buffered channel to all subscribers, one
// event at a time.
type Bus struct {
	log *slog.Logger

	mu          sync.RWMutex
	subscribers []namedHandler
	closed      bool

	events   chan Event
	done     chan struct{}
	stopOnce sync.Once
}

type namedHandler struct {
	name    string
	handler Handler
}

// New creates a Bus with the given channel buffer size.
func New(log *slog.Logger, bufSize int) *Bus {
	if bufSize < 1 {
		bufSize = 256
	}
	return &Bus{
		log:    log.With("component", "eventbus"),
		events: make(chan Event, bufSize),
		done:   make(chan struct{}),
	}
}

// Subscribe registers a named handler. Must be called before Start.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, namedHandler{name: name, handler: h})
}

// Publish enqueues an event without blocking. When the buffer is full or
// the bus is stopped the event is dropped and false is returned.
func (b *Bus) Publish(_ context.Context, evt Event) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.log.Warn("publish after stop", slog.String("type", evt.Type), slog.String("entity", evt.Entity))
		return false
	}

	select {
	case b.events <- evt:
		return true
	default:
		b.log.Warn("buffer full, dropping event", slog.String("type", evt.Type), slog.String("entity", evt.Entity))
		return false
	}
}

// Start runs the consumer goroutine until Stop is called or ctx is
// cancelled. Buffered events are drained before it exits.
func (b *Bus) Start(ctx context.Context) {
	go func() {
		defer close(b.done)
		for {
			select {
			case evt, ok := <-b.events:
				if !ok {
					return
				}
				b.dispatch(ctx, evt)
			case <-ctx.Done():
				b.drain(ctx)
				return
			}
		}
	}()
}

// Stop closes the bus and waits for the consumer goroutine to finish.
// Start must have been called.
func (b *Bus) Stop() {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		close(b.events)
		b.mu.Unlock()
	})
	<-b.done
}

// Ping reports whether the bus still accepts events.
func (b *Bus) Ping(_ context.Context) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrStopped
	}
	return nil
}

func (b *Bus) drain(ctx context.Context) {
	for {
		select {
		case evt, ok := <-b.events:
			if !ok {
				return
			}
			b.dispatch(ctx, evt)
		default:
			return
		}
	}
}

func (b *Bus) dispatch(ctx context.Context, evt Event) {
	b.mu.RLock()
	subs := b.subscribers
	b.mu.RUnlock()

	for _, s := range subs {
		if err := s.handler.HandleEvent(ctx, evt); err != nil {
			b.log.Error("handler failed",
				slog.String("handler", s.name),
				slog.String("type", evt.Type),
				slog.String("error", err.Error()),
			)
		}
	}
}
