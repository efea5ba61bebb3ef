package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/timension/internal/api/shared"
	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/service/auth"
)

// decodeAndValidate reads the JSON body into v and validates it. On failure
// it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		message := "Invalid request format"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			message = "Request body too large"
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// getSessionFromContext returns the session placed in the context by the
// authentication middleware, writing a 401 when it is missing.
func getSessionFromContext(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	session, ok := shared.GetSession(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("session not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return session, true
}

// getPathParam extracts a required path parameter.
func getPathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		respondWithMappedError(w, r, domain.ErrInvalidID)
		return "", false
	}
	return value, true
}

// clientGone reports whether the caller disconnected while content was
// being generated. Nothing is written in that case.
func clientGone(r *http.Request) bool {
	if err := r.Context().Err(); errors.Is(err, context.Canceled) {
		logger.FromContext(r.Context()).Debug("client went away, discarding result",
			"path", r.URL.Path,
			"error", err)
		return true
	}
	return false
}
