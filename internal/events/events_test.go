package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// MockEventHandler records the events it receives.
type MockEventHandler struct {
	HandledCount int
	LastEvent    *AuthEvent
	HandlerError error
}

func (m *MockEventHandler) HandleEvent(ctx context.Context, event *AuthEvent) error {
	m.HandledCount++
	m.LastEvent = event
	return m.HandlerError
}

func TestNewAuthEvent(t *testing.T) {
	userID := uuid.New()
	event := NewAuthEvent(SignedIn, userID, "ada@example.com", false)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, SignedIn, event.Type)
	assert.Equal(t, userID, event.UserID)
	assert.Equal(t, "ada@example.com", event.Email)
	assert.False(t, event.Offline)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	other := NewAuthEvent(SignedIn, userID, "ada@example.com", false)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestHandlerFunc(t *testing.T) {
	var got *AuthEvent
	h := HandlerFunc(func(ctx context.Context, event *AuthEvent) error {
		got = event
		return nil
	})

	event := NewAuthEvent(SignedOut, uuid.New(), "a@b.co", true)
	assert.NoError(t, h.HandleEvent(context.Background(), event))
	assert.Same(t, event, got)
}
