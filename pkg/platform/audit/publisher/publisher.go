// Package publisher emits audit events to a store, either synchronously or
// through a bounded buffer drained by a background goroutine.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/audit"
	"github.com/kkutopiaa/tdd-restful-service/pkg/requestcontext"
)

var (
	ErrBufferFull   = errors.New("audit buffer full")
	ErrClosed       = errors.New("audit publisher closed")
	ErrInvalidEvent = errors.New("invalid audit event")
)

// Publisher emits audit events.
type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	metrics *Metrics

	bufferSize int
	inbox      chan audit.Event
	done       chan struct{}

	mu     sync.RWMutex
	closed bool
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer makes Emit enqueue events into a buffer of size n. Events
// that do not fit are dropped with ErrBufferFull.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) { p.bufferSize = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) { p.metrics = m }
}

// NewPublisher creates a publisher writing to store.
func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize > 0 {
		p.inbox = make(chan audit.Event, p.bufferSize)
		p.done = make(chan struct{})
		go p.drain()
	}
	return p
}

// Emit records event. A missing timestamp or request id is taken from ctx.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.UserID == "" || event.Action == "" {
		return ErrInvalidEvent
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	if p.inbox == nil {
		return p.persist(ctx, event)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.inbox <- event:
		return nil
	default:
		p.metrics.incDropped()
		p.logger.WarnContext(ctx, "audit event dropped", "action", event.Action, "user_id", event.UserID)
		return ErrBufferFull
	}
}

// List returns the events recorded for userID.
func (p *Publisher) List(ctx context.Context, userID string) ([]audit.Event, error) {
	return p.store.ListByUser(ctx, userID)
}

// Close stops accepting events and waits for buffered ones to be written.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	if p.inbox != nil {
		close(p.inbox)
	}
	p.mu.Unlock()

	if p.done != nil {
		<-p.done
	}
	return nil
}

func (p *Publisher) drain() {
	defer close(p.done)
	for event := range p.inbox {
		_ = p.persist(context.Background(), event)
	}
}

func (p *Publisher) persist(ctx context.Context, event audit.Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		p.metrics.incPersistFailures()
		p.logger.ErrorContext(ctx, "audit persistence failed",
			"action", event.Action,
			"user_id", event.UserID,
			"error", err,
		)
		return err
	}
	p.metrics.incEmitted(event.Action)
	return nil
}
