package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/api/shared"
	"github.com/phrazzld/timension/internal/domain"
)

// ContentService produces newspaper content. Every operation returns a
// usable value; model failures surface as fallback content.
type ContentService interface {
	GenerateDailyHeadline(ctx context.Context) domain.NewsArticle
	ChatWithMentor(ctx context.Context, name, era string, history []domain.ChatMessage, message string) string
	ExploreLocation(ctx context.Context, query string) domain.Exploration
	GenerateTimeline(ctx context.Context, topic string) []domain.TimelineEvent
	GetMissionBriefing(ctx context.Context, year, title string) domain.MissionBriefing
	TriggerTimeRipple(ctx context.Context, originalText, newText string) domain.RippleResult
	GenerateChaosPuzzle(ctx context.Context) domain.ChaosPuzzle
	Live() bool
}

// Catalog lists the static mentors and time portals.
type Catalog interface {
	Mentors() []domain.Mentor
	Mentor(id string) (domain.Mentor, error)
	Portals() []domain.TimePortal
	Portal(id string) (domain.TimePortal, error)
	Chronicle() []domain.ChroniclePanel
}

// ContentHandler serves the newspaper's generated sections.
type ContentHandler struct {
	content ContentService
	catalog Catalog
	now     func() time.Time
	newID   func() string
}

// NewContentHandler creates a new ContentHandler with the given dependencies.
func NewContentHandler(content ContentService, catalog Catalog) *ContentHandler {
	return &ContentHandler{
		content: content,
		catalog: catalog,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Headline handles GET /api/headline.
func (h *ContentHandler) Headline(w http.ResponseWriter, r *http.Request) {
	article := h.content.GenerateDailyHeadline(r.Context())
	if clientGone(r) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, article)
}

// ListMentors handles GET /api/mentors.
func (h *ContentHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.Mentors())
}

// Chat handles POST /api/mentors/{id}/chat. The reply is returned as the
// next message of the conversation.
func (h *ContentHandler) Chat(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathParam(w, r, "id")
	if !ok {
		return
	}
	mentor, err := h.catalog.Mentor(id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	var req ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply := h.content.ChatWithMentor(r.Context(), mentor.Name, mentor.Era, req.History, req.Message)
	if clientGone(r) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, domain.ChatMessage{
		ID:        h.newID(),
		Sender:    domain.SenderAI,
		Text:      reply,
		Timestamp: h.now().UnixMilli(),
	})
}

// ListPortals handles GET /api/portals.
func (h *ContentHandler) ListPortals(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.Portals())
}

// ListChronicle handles GET /api/chronicle. The panel texts are the lines
// a ripple request rewrites.
func (h *ContentHandler) ListChronicle(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.Chronicle())
}

// Briefing handles GET /api/portals/{id}/briefing.
func (h *ContentHandler) Briefing(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathParam(w, r, "id")
	if !ok {
		return
	}
	portal, err := h.catalog.Portal(id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	briefing := h.content.GetMissionBriefing(r.Context(), portal.Year, portal.Title)
	if clientGone(r) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, briefing)
}

// Explore handles POST /api/explore.
func (h *ContentHandler) Explore(w http.ResponseWriter, r *http.Request) {
	var req ExploreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exploration := h.content.ExploreLocation(r.Context(), req.Query)
	if clientGone(r) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, exploration)
}

// Timeline handles POST /api/timeline.
func (h *ContentHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	var req TimelineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	events := h.content.GenerateTimeline(r.Context(), req.Topic)
	if clientGone(r) {
		return
	}
	if events == nil {
		events = []domain.TimelineEvent{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, events)
}

// Ripple handles POST /api/ripple. The model's stability change is applied
// to the caller's meter and clamped to [0, 100].
func (h *ContentHandler) Ripple(w http.ResponseWriter, r *http.Request) {
	var req RippleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current := domain.MaxStability
	if req.Stability != nil {
		current = *req.Stability
	}

	result := h.content.TriggerTimeRipple(r.Context(), req.OriginalText, req.NewText)
	if clientGone(r) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RippleResponse{
		RippleResult: result,
		Stability:    domain.ApplyStability(current, result.StabilityChange),
	})
}

// Chaos handles GET /api/chaos.
func (h *ContentHandler) Chaos(w http.ResponseWriter, r *http.Request) {
	puzzle := h.content.GenerateChaosPuzzle(r.Context())
	if clientGone(r) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, puzzle)
}

// ChaosAnswer handles POST /api/chaos/answer. The puzzle travels with the
// request since puzzles are not stored.
func (h *ContentHandler) ChaosAnswer(w http.ResponseWriter, r *http.Request) {
	var req ChaosAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp := ChaosAnswerResponse{Correct: req.Puzzle.IsCorrect(*req.AnswerIndex)}
	if resp.Correct {
		resp.RestorationMessage = req.Puzzle.RestorationMessage
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
