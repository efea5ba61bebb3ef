package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/timension/internal/api/shared"
	"github.com/phrazzld/timension/internal/service/auth"
)

// AuthService is the session lifecycle used by AuthHandler.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*auth.Session, error)
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.Session, error)
	Session(ctx context.Context, accessToken string) (*auth.Session, error)
	SignOut(ctx context.Context, session *auth.Session, refreshToken string) error
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.auth.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, session)
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, session)
}

// RefreshToken handles POST /api/auth/refresh.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, session)
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := getSessionFromContext(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SessionResponse{
		UserID:    session.UserID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
		Offline:   session.Offline,
	})
}

// SignOut handles POST /api/auth/signout. The body is optional and may
// carry the refresh token to revoke along with the access token.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	session, ok := getSessionFromContext(w, r)
	if !ok {
		return
	}

	var req SignOutRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.auth.SignOut(r.Context(), session, req.RefreshToken); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
