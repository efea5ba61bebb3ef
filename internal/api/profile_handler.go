package api

import (
	"net/http"

	"github.com/phrazzld/timension/internal/api/shared"
	"github.com/phrazzld/timension/internal/service"
)

// ProfileHandler serves the signed-in traveler's profile.
type ProfileHandler struct {
	profiles service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile handles GET /api/profile. It always answers 200: unreadable
// records yield the fallback profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := getSessionFromContext(w, r)
	if !ok {
		return
	}

	profile := h.profiles.GetProfile(r.Context(), session.Identity())
	if clientGone(r) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}
