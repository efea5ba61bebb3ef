package events

import (
	"context"
	"log/slog"
	"sync"
)

type registration struct {
	id      uint64
	handler EventHandler
}

// InMemoryEventEmitter stores registered handlers in memory and dispatches
// events to them synchronously.
type InMemoryEventEmitter struct {
	handlers []registration
	nextID   uint64
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With("component", "auth_events"),
	}
}

// RegisterHandler adds a handler and returns a function that removes it.
// The returned function is safe to call more than once.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) (unregister func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, registration{id: id, handler: handler})
	e.logger.Debug("registered event handler", "handler_count", len(e.handlers))

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, r := range e.handlers {
			if r.id == id {
				e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

// HandlerCount returns the number of registered handlers.
func (e *InMemoryEventEmitter) HandlerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers)
}

// EmitEvent publishes the given event to all registered handlers.
// If any handler returns an error, the event will still be sent to all other handlers,
// and the first error encountered will be returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *AuthEvent) error {
	e.mu.RLock()
	handlers := make([]registration, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	e.logger.Debug("emitting event",
		"event_id", event.ID,
		"event_type", event.Type,
		"handler_count", len(handlers))

	var firstErr error
	for i, r := range handlers {
		if err := r.handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// NewLoggingHandler returns a handler that records every auth event at
// INFO level.
func NewLoggingHandler(logger *slog.Logger) EventHandler {
	logger = logger.With("component", "auth_audit")
	return HandlerFunc(func(ctx context.Context, event *AuthEvent) error {
		logger.InfoContext(ctx, "auth state changed",
			"event_id", event.ID,
			"event_type", event.Type,
			"user_id", event.UserID,
			"offline", event.Offline)
		return nil
	})
}
