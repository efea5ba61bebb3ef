package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthEventType names a session lifecycle transition.
type AuthEventType string

// Session lifecycle transitions
const (
	SignedUp       AuthEventType = "signed_up"
	SignedIn       AuthEventType = "signed_in"
	TokenRefreshed AuthEventType = "token_refreshed"
	SignedOut      AuthEventType = "signed_out"
)

// AuthEvent is emitted whenever a user's session changes.
type AuthEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Type   AuthEventType `json:"type"`
	UserID uuid.UUID     `json:"user_id"`
	Email  string        `json:"email"`

	// Offline is set for sessions issued without reaching the user store
	Offline bool `json:"offline"`

	CreatedAt time.Time `json:"created_at"`
}

// NewAuthEvent creates an AuthEvent with a fresh ID and timestamp.
func NewAuthEvent(eventType AuthEventType, userID uuid.UUID, email string, offline bool) *AuthEvent {
	return &AuthEvent{
		ID:        uuid.New(),
		Type:      eventType,
		UserID:    userID,
		Email:     email,
		Offline:   offline,
		CreatedAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *AuthEvent) error
}

// HandlerFunc adapts a function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *AuthEvent) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *AuthEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *AuthEvent) error
}
