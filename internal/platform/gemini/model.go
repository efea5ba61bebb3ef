package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/timension/internal/config"
	"github.com/phrazzld/timension/internal/generation"
	"github.com/phrazzld/timension/internal/redact"
	"google.golang.org/genai"
)

// Model implements generation.Model with the Gemini API.
type Model struct {
	logger  *slog.Logger
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ generation.Model = (*Model)(nil)

// NewModel creates a Gemini-backed model.
//
// The configuration must carry an API key and a model name. BaseURL, when
// set, replaces the public endpoint. RequestTimeoutSeconds bounds each call;
// zero leaves the deadline to the caller's context.
func NewModel(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Model, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{},
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return &Model{
		logger:  logger.With("component", "gemini"),
		client:  client,
		model:   cfg.ModelName,
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}, nil
}

func validateConfig(cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("%w: request timeout cannot be negative", generation.ErrInvalidConfig)
	}
	return nil
}

// Generate sends one GenerateContent request.
// An empty answer is returned as an empty Text, not an error.
func (m *Model) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	start := time.Now()
	m.logger.DebugContext(ctx, "Calling Gemini",
		"model", m.model,
		"prompt_length", len(req.Prompt),
		"structured", req.Schema != nil,
		"maps", req.UseMaps)

	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(req.Prompt), buildConfig(req))
	if err != nil {
		classified := classifyError(err)
		m.logger.ErrorContext(ctx, "Gemini call failed",
			"model", m.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", redact.Error(classified))
		return nil, classified
	}

	out, err := parseResponse(resp)
	if err != nil {
		m.logger.WarnContext(ctx, "Gemini returned an unusable response",
			"model", m.model,
			"error", err)
		return nil, err
	}

	m.logger.DebugContext(ctx, "Gemini call succeeded",
		"model", m.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"text_length", len(out.Text),
		"citations", len(out.Citations))
	return out, nil
}

func buildConfig(req generation.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenaiSchema(req.Schema)
	}
	if req.UseMaps {
		cfg.Tools = []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}}
	}
	return cfg
}

func parseResponse(resp *genai.GenerateContentResponse) (*generation.Response, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: prompt blocked: %s",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	switch candidate.FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
		return nil, fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}

	return &generation.Response{
		Text:      resp.Text(),
		Citations: mapCitations(candidate.GroundingMetadata),
	}, nil
}

func mapCitations(meta *genai.GroundingMetadata) []generation.Citation {
	if meta == nil {
		return nil
	}

	var citations []generation.Citation
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Maps == nil {
			continue
		}
		citations = append(citations, generation.Citation{
			Title: chunk.Maps.Title,
			URI:   chunk.Maps.URI,
		})
	}
	return citations
}

func classifyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", generation.ErrTransientFailure, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError {
			return fmt.Errorf("%w: status %d: %s", generation.ErrTransientFailure, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%w: status %d: %s", generation.ErrGenerationFailed, apiErr.Code, apiErr.Message)
	}

	return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
}
