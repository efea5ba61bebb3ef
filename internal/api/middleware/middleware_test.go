package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/api/shared"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	session *auth.Session
	err     error
	token   string
}

func (s *stubSessions) Session(_ context.Context, token string) (*auth.Session, error) {
	s.token = token
	return s.session, s.err
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	session := &auth.Session{
		UserID:    uuid.New(),
		Email:     "ada@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
		TokenID:   "jti-1",
	}

	tests := []struct {
		name           string
		authHeader     string
		err            error
		expectedStatus int
		expectedError  string
		wantSession    bool
	}{
		{name: "valid token", authHeader: "Bearer good", expectedStatus: http.StatusOK, wantSession: true},
		{name: "lowercase scheme", authHeader: "bearer good", expectedStatus: http.StatusOK, wantSession: true},
		{name: "missing header", expectedStatus: http.StatusUnauthorized, expectedError: "Authorization header required"},
		{name: "wrong scheme", authHeader: "Basic abc", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid authorization format"},
		{name: "no token", authHeader: "Bearer ", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid authorization format"},
		{name: "extra parts", authHeader: "Bearer a b", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid authorization format"},
		{name: "expired", authHeader: "Bearer old", err: auth.ErrExpiredToken, expectedStatus: http.StatusUnauthorized, expectedError: "Token expired"},
		{name: "revoked", authHeader: "Bearer gone", err: auth.ErrRevokedToken, expectedStatus: http.StatusUnauthorized, expectedError: "Token revoked"},
		{name: "invalid", authHeader: "Bearer bad", err: auth.ErrInvalidToken, expectedStatus: http.StatusUnauthorized, expectedError: "Invalid token"},
		{name: "refresh token used", authHeader: "Bearer refresh", err: auth.ErrWrongTokenType, expectedStatus: http.StatusUnauthorized, expectedError: "Invalid token"},
		{name: "unexpected error", authHeader: "Bearer x", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedError: "Authentication error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stub := &stubSessions{err: tt.err}
			if tt.err == nil {
				stub.session = session
			}
			mw := NewAuthMiddleware(stub)

			var got *auth.Session
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = shared.GetSession(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.wantSession {
				assert.Same(t, session, got)
				assert.Equal(t, "good", stub.token)
				return
			}
			assert.Nil(t, got)

			var resp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	log, buf := logger.NewTestLogger(t)
	mw := NewTraceMiddleware(log)

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("handled")
	})

	t.Run("generates trace ID", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/headline", nil))

		require.NotEmpty(t, traceID)
		assert.Equal(t, traceID, rr.Header().Get(shared.TraceIDHeader))

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, traceID, e["correlation_id"])
		}
	})

	t.Run("reuses incoming trace ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/headline", nil)
		req.Header.Set(shared.TraceIDHeader, "client-trace-42")
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, "client-trace-42", traceID)
		assert.Equal(t, "client-trace-42", rr.Header().Get(shared.TraceIDHeader))
	})

	t.Run("replaces malformed trace ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/headline", nil)
		req.Header.Set(shared.TraceIDHeader, "bad id\n")
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, req)

		assert.NotEqual(t, "bad id\n", traceID)
		assert.Len(t, traceID, 32)
	})
}
