package eventlog

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/category"
)

// Subscribable is the queue surface the logger attaches to.
// Both queue.Pump and queue.Background satisfy it.
type Subscribable interface {
	Subscribe(cat category.Category, sub event.Subscriber) error
}

// Logger is a structured logger tied to a queue's lifecycle.
// It is safe for concurrent use.
type Logger struct {
	mu       sync.RWMutex
	disposed bool
	zl       zerolog.Logger
}

// Option configures a Logger.
type Option func(*zerolog.Logger)

// WithLevel sets the minimum level written.
func WithLevel(level zerolog.Level) Option {
	return func(zl *zerolog.Logger) {
		*zl = zl.Level(level)
	}
}

// WithComponent adds a component field to every record.
func WithComponent(name string) Option {
	return func(zl *zerolog.Logger) {
		*zl = zl.With().Str("component", name).Logger()
	}
}

// New creates a logger writing structured records to w.
// Each logger instance carries a unique logger_id field.
func New(w io.Writer, opts ...Option) *Logger {
	zl := zerolog.New(w).With().
		Timestamp().
		Str("logger_id", uuid.NewString()).
		Logger()
	for _, opt := range opts {
		opt(&zl)
	}
	return &Logger{zl: zl}
}

// Attach subscribes the logger to the queue's terminal notification and to
// delivery-failure events.
func (l *Logger) Attach(q Subscribable) error {
	if err := q.Subscribe(event.CategoryQueueClosed, l); err != nil {
		return err
	}
	return q.Subscribe(event.CategoryDeliveryFailure, l)
}

// Handle implements event.Subscriber. The queue-closed notification disposes
// the logger; delivery failures are written as error records. Other events
// are ignored.
func (l *Logger) Handle(ctx context.Context, ev any) error {
	switch e := ev.(type) {
	case event.QueueClosed:
		l.dispose()
		return nil
	case event.DeliveryFailure:
		return l.logFailure(e)
	default:
		return nil
	}
}

// dispose writes a final record and permanently disables the logger.
func (l *Logger) dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return
	}
	l.zl.Info().Msg("queue closed, disposing logger")
	l.disposed = true
}

// logFailure records the failures of one fire-and-forget dispatch.
func (l *Logger) logFailure(f event.DeliveryFailure) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.disposed {
		return ErrDisposed
	}

	cat := ""
	if cp, ok := f.Event.(event.CategoryProvider); ok {
		cat = cp.EventCategory().String()
	}
	msgs := make([]string, len(f.Errs))
	for i, err := range f.Errs {
		msgs[i] = err.Error()
	}
	l.zl.Error().
		Str("event_category", cat).
		Int("failure_count", len(f.Errs)).
		Strs("failures", msgs).
		Msg("event delivery failed")
	return nil
}

// Disposed reports whether the logger observed the queue-closed
// notification.
func (l *Logger) Disposed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.disposed
}

// Debug writes a debug record with optional key-value field pairs.
func (l *Logger) Debug(msg string, kv ...any) error {
	return l.write(zerolog.DebugLevel, msg, kv)
}

// Info writes an info record with optional key-value field pairs.
func (l *Logger) Info(msg string, kv ...any) error {
	return l.write(zerolog.InfoLevel, msg, kv)
}

// Warn writes a warning record with optional key-value field pairs.
func (l *Logger) Warn(msg string, kv ...any) error {
	return l.write(zerolog.WarnLevel, msg, kv)
}

// Error writes an error record with optional key-value field pairs.
func (l *Logger) Error(msg string, kv ...any) error {
	return l.write(zerolog.ErrorLevel, msg, kv)
}

// write emits one record unless the logger has been disposed.
func (l *Logger) write(level zerolog.Level, msg string, kv []any) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.disposed {
		return ErrDisposed
	}

	rec := l.zl.WithLevel(level)
	if len(kv) > 0 {
		rec = rec.Fields(kv)
	}
	rec.Msg(msg)
	return nil
}
