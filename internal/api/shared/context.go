package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/service/auth"
)

// Key type for context values
type ContextKey string

// SessionContextKey is the context key for the authenticated auth.Session
const SessionContextKey ContextKey = "session"

// TraceIDHeader carries the trace ID in requests and responses.
const TraceIDHeader = "X-Trace-ID"

// maxTraceIDLength bounds client supplied trace IDs.
const maxTraceIDLength = 64

// SetTraceID adds a trace ID to the context. A valid candidate (usually
// from the request header) is reused; otherwise a fresh ID is generated.
// The context logger is tagged with the ID as correlation_id.
func SetTraceID(ctx context.Context, candidate string) context.Context {
	id := candidate
	if !validTraceID(id) {
		id = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return logger.WithCorrelationID(ctx, id)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.CorrelationID(ctx)
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// WithSession stores the authenticated session in the context.
func WithSession(ctx context.Context, s *auth.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, s)
}

// GetSession returns the authenticated session from the context.
func GetSession(ctx context.Context) (*auth.Session, bool) {
	s, ok := ctx.Value(SessionContextKey).(*auth.Session)
	return s, ok && s != nil
}
