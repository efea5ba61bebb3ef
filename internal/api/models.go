package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/domain"
)

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// RefreshTokenRequest is the body of POST /api/auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SignOutRequest is the optional body of POST /api/auth/signout.
type SignOutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// SessionResponse describes the session behind an access token.
type SessionResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	Offline   bool      `json:"offline"`
}

// ChatRequest is the body of POST /api/mentors/{id}/chat. History is the
// conversation so far, oldest first.
type ChatRequest struct {
	History []domain.ChatMessage `json:"history" validate:"dive"`
	Message string               `json:"message" validate:"required,max=2000"`
}

// ExploreRequest is the body of POST /api/explore.
type ExploreRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}

// TimelineRequest is the body of POST /api/timeline.
type TimelineRequest struct {
	Topic string `json:"topic" validate:"required,max=2000"`
}

// RippleRequest is the body of POST /api/ripple. Stability is the meter
// before the ripple and defaults to domain.MaxStability.
type RippleRequest struct {
	OriginalText string `json:"originalText" validate:"required,max=2000"`
	NewText      string `json:"newText"      validate:"required,max=2000"`
	Stability    *int   `json:"stability"    validate:"omitempty,min=0,max=100"`
}

// RippleResponse is the ripple result with the stability meter already
// clamped.
type RippleResponse struct {
	domain.RippleResult
	Stability int `json:"stability"`
}

// ChaosAnswerRequest is the body of POST /api/chaos/answer.
type ChaosAnswerRequest struct {
	Puzzle      domain.ChaosPuzzle `json:"puzzle"`
	AnswerIndex *int               `json:"answerIndex" validate:"required,min=0,max=3"`
}

// ChaosAnswerResponse reports whether an answer restored the timeline.
type ChaosAnswerResponse struct {
	Correct            bool   `json:"correct"`
	RestorationMessage string `json:"restorationMessage,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Content string `json:"content"`
}
