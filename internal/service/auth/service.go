package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/config"
	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/events"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/redact"
	"github.com/phrazzld/timension/internal/store"
)

// OfflineDemoEmail is the account shown for offline demo sessions.
const OfflineDemoEmail = "demo@timension.com"

// Session is the authenticated context of one user. It is created on
// sign-in, replaced on refresh and torn down on sign-out.
type Session struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Offline      bool      `json:"offline"`

	// TokenID is the ID of the access token the session was read from.
	TokenID string `json:"-"`
}

// Identity returns the identity the session belongs to.
func (s *Session) Identity() Identity {
	return Identity{UserID: s.UserID, Email: s.Email, Offline: s.Offline}
}

// Dependencies are the collaborators of Service. Events and Revoked are
// optional.
type Dependencies struct {
	DB       *sql.DB
	Users    store.UserStore
	Profiles store.ProfileStore
	Tokens   JWTService
	Hasher   PasswordHasher
	Verifier PasswordVerifier
	Events   events.EventEmitter
	Revoked  *Revocations
}

// Service runs the session lifecycle.
type Service struct {
	db          *sql.DB
	users       store.UserStore
	profiles    store.ProfileStore
	tokens      JWTService
	hasher      PasswordHasher
	verifier    PasswordVerifier
	events      events.EventEmitter
	revoked     *Revocations
	offlineDemo bool
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates the auth service.
func NewService(cfg config.AuthConfig, deps Dependencies, logger *slog.Logger) (*Service, error) {
	switch {
	case deps.DB == nil:
		return nil, errors.New("auth service requires a database")
	case deps.Users == nil || deps.Profiles == nil:
		return nil, errors.New("auth service requires user and profile stores")
	case deps.Tokens == nil:
		return nil, errors.New("auth service requires a token service")
	case deps.Hasher == nil || deps.Verifier == nil:
		return nil, errors.New("auth service requires a password hasher and verifier")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Revoked == nil {
		leeway := DefaultClockSkew
		if skewed, ok := deps.Tokens.(interface{ ClockSkew() time.Duration }); ok {
			leeway = skewed.ClockSkew()
		}
		deps.Revoked = NewRevocations(leeway)
	}

	return &Service{
		db:          deps.DB,
		users:       deps.Users,
		profiles:    deps.Profiles,
		tokens:      deps.Tokens,
		hasher:      deps.Hasher,
		verifier:    deps.Verifier,
		events:      deps.Events,
		revoked:     deps.Revoked,
		offlineDemo: cfg.OfflineDemo,
		logger:      logger.With("component", "auth_service"),
		now:         time.Now,
	}, nil
}

// SignUp registers a new account with an empty traveler profile and signs
// it in.
func (s *Service) SignUp(ctx context.Context, email, password string) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(normalizeEmail(email), password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	user.HashedPassword, err = s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.profiles.WithTx(tx).CreateProfile(ctx, user.ID)
	})
	switch {
	case err == nil:
	case errors.Is(err, store.ErrEmailExists):
		log.Debug("sign-up with registered email")
		return nil, ErrEmailTaken
	case store.IsUnavailableError(err):
		return s.unavailable(ctx, "sign_up", err)
	default:
		log.Error("failed to register user", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID)
	return s.startSession(ctx, events.SignedUp, Identity{UserID: user.ID, Email: user.Email})
}

// SignIn checks the credentials and starts a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
	case store.IsNotFoundError(err):
		log.Debug("sign-in for unknown email")
		return nil, ErrInvalidCredentials
	case store.IsUnavailableError(err):
		return s.unavailable(ctx, "sign_in", err)
	default:
		log.Error("failed to look up user", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("sign-in with wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.startSession(ctx, events.SignedIn, Identity{UserID: user.ID, Email: user.Email})
}

// Refresh exchanges a refresh token for a new session. The presented
// refresh token is revoked before anything else happens, so it is spent
// even when the exchange fails.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !s.revoked.RevokeIfNew(claims.ID, claims.ExpiresAt) {
		log.Warn("revoked refresh token presented", "user_id", claims.UserID, "token_id", claims.ID)
		return nil, ErrRevokedToken
	}

	id := claims.Identity()
	if !id.Offline {
		user, err := s.users.GetByID(ctx, claims.UserID)
		switch {
		case err == nil:
			id.Email = user.Email
		case store.IsNotFoundError(err):
			return nil, ErrInvalidRefreshToken
		case store.IsUnavailableError(err):
			return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		default:
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
	}

	return s.startSession(ctx, events.TokenRefreshed, id)
}

// Session validates an access token and returns the session it carries.
func (s *Service) Session(ctx context.Context, accessToken string) (*Session, error) {
	claims, err := s.tokens.ValidateToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if s.revoked.IsRevoked(claims.ID) {
		return nil, ErrRevokedToken
	}

	return &Session{
		UserID:      claims.UserID,
		Email:       claims.Email,
		AccessToken: accessToken,
		ExpiresAt:   claims.ExpiresAt,
		Offline:     claims.Offline,
		TokenID:     claims.ID,
	}, nil
}

// SignOut revokes the session's access token and, when given, its refresh
// token. An invalid refresh token does not fail the sign-out.
func (s *Service) SignOut(ctx context.Context, session *Session, refreshToken string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if session == nil || session.TokenID == "" {
		return ErrMissingToken
	}
	s.revoked.Revoke(session.TokenID, session.ExpiresAt)

	if refreshToken != "" {
		claims, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
		switch {
		case err != nil:
			log.Debug("ignoring invalid refresh token on sign-out", "error", err)
		case claims.UserID != session.UserID:
			log.Warn("refresh token of another user presented on sign-out", "user_id", session.UserID)
		default:
			s.revoked.Revoke(claims.ID, claims.ExpiresAt)
		}
	}

	s.emit(ctx, events.NewAuthEvent(events.SignedOut, session.UserID, session.Email, session.Offline))
	return nil
}

// unavailable handles an unreachable user store: an offline demo session
// when enabled, ErrBackendUnavailable otherwise.
func (s *Service) unavailable(ctx context.Context, op string, err error) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !s.offlineDemo {
		log.Error("user store unavailable", "operation", op, "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	log.Warn("user store unavailable, issuing offline demo session",
		"operation", op,
		"error", redact.Error(err))
	return s.startSession(ctx, events.SignedIn, Identity{Email: OfflineDemoEmail, Offline: true})
}

func (s *Service) startSession(ctx context.Context, eventType events.AuthEventType, id Identity) (*Session, error) {
	access, err := s.tokens.GenerateToken(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	session := &Session{
		UserID:       id.UserID,
		Email:        id.Email,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    s.now().Add(s.tokens.AccessTokenLifetime()).UTC(),
		Offline:      id.Offline,
	}

	s.emit(ctx, events.NewAuthEvent(eventType, id.UserID, id.Email, id.Offline))
	return session, nil
}

func (s *Service) emit(ctx context.Context, event *events.AuthEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("auth event handler failed",
			"event_type", event.Type,
			"error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
