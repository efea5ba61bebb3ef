package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/generation"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/redact"
)

var (
	// errNoCredential marks calls made on a service built without a model.
	errNoCredential = errors.New("no model credential configured")

	// errMalformed marks payloads that are empty, undecodable or invalid.
	errMalformed = errors.New("malformed model output")
)

// Picker returns an index in [0, n). It must be safe for concurrent use.
type Picker func(n int) int

// Service produces newspaper content. The zero value is not usable; build
// one with New.
type Service struct {
	model    generation.Model
	logger   *slog.Logger
	validate *validator.Validate
	pick     Picker
	newID    func() string
}

// Option configures a Service.
type Option func(*Service)

// WithPicker replaces the random choice of fallback chaos puzzles.
func WithPicker(p Picker) Option {
	return func(s *Service) {
		if p != nil {
			s.pick = p
		}
	}
}

// WithIDGenerator replaces the ID assigned to generated chaos puzzles.
func WithIDGenerator(f func() string) Option {
	return func(s *Service) {
		if f != nil {
			s.newID = f
		}
	}
}

// New creates a content service. A nil model means no credential is
// configured: every operation then serves its fallback.
func New(model generation.Model, log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}

	s := &Service{
		model:    model,
		logger:   log.With("component", "content"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		pick:     rand.IntN,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Live reports whether the service has a model to call.
func (s *Service) Live() bool {
	return s.model != nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	if id := logger.CorrelationID(ctx); id != "" {
		return s.logger.With("correlation_id", id)
	}
	return s.logger
}

// generate performs one model call and returns the raw answer.
func (s *Service) generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	if s.model == nil {
		return nil, errNoCredential
	}
	resp, err := s.model.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: nil response", errMalformed)
	}
	return resp, nil
}

// generateJSON renders a prompt, requests output matching schema and
// decodes it into out.
func (s *Service) generateJSON(
	ctx context.Context,
	prompt string,
	schema *generation.Schema,
	out any,
) error {
	resp, err := s.generate(ctx, generation.Request{Prompt: prompt, Schema: schema})
	if err != nil {
		return err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return fmt.Errorf("%w: empty payload", errMalformed)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	return nil
}

func (s *Service) checkStruct(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	return nil
}

// category names the failure class for logs.
func category(err error) string {
	switch {
	case errors.Is(err, errNoCredential):
		return "missing_credential"
	case errors.Is(err, errMalformed), errors.Is(err, generation.ErrInvalidResponse):
		return "malformed_response"
	case errors.Is(err, generation.ErrContentBlocked):
		return "content_blocked"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "transport"
	}
}

// degrade records that op is serving its fallback.
func (s *Service) degrade(ctx context.Context, op string, err error) {
	cat := category(err)
	level := slog.LevelWarn
	if cat == "transport" {
		level = slog.LevelError
	}
	s.log(ctx).Log(ctx, level, "Serving fallback content",
		"operation", op,
		"category", cat,
		"error", redact.Error(err))
}
