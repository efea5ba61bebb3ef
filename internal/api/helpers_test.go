package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/timension/internal/api/shared"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/service/auth"
	"github.com/stretchr/testify/require"
)

// serve routes one request through a chi router holding a single route so
// path parameters resolve as in production.
func serve(
	t *testing.T,
	method, pattern string,
	h http.HandlerFunc,
	target, body string,
	session *auth.Session,
) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	log, _ := logger.NewTestLogger(t)
	ctx := shared.SetTraceID(logger.WithLogger(req.Context(), log), "test-trace")
	if session != nil {
		ctx = shared.WithSession(ctx, session)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req.WithContext(ctx))
	return rr
}

// cancelledRequest builds a request whose context is already done.
func cancelledRequest(method, target, body string) *http.Request {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return httptest.NewRequest(method, target, strings.NewReader(body)).WithContext(ctx)
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v), rr.Body.String())
	return v
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeBody[shared.ErrorResponse](t, rr)
	return resp.Error
}
