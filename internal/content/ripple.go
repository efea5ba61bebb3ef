package content

import (
	"context"
	"fmt"

	"github.com/phrazzld/timension/internal/domain"
)

type rippleOutput struct {
	Consequence     string `json:"consequence"    validate:"required"`
	StabilityChange *int   `json:"stabilityChange"`
	FutureHeadline  string `json:"futureHeadline" validate:"required"`
}

// TriggerTimeRipple judges how far history shifts when originalText is
// replaced by newText. StabilityChange is passed through unclamped.
func (s *Service) TriggerTimeRipple(ctx context.Context, originalText, newText string) domain.RippleResult {
	const op = "ripple"

	prompt, err := renderPrompt(ripplePrompt, ripplePromptData{Original: originalText, Replacement: newText})
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackRipple()
	}

	var out rippleOutput
	if err := s.generateJSON(ctx, prompt, rippleSchema, &out); err != nil {
		s.degrade(ctx, op, err)
		return FallbackRipple()
	}
	if err := s.checkStruct(&out); err != nil {
		s.degrade(ctx, op, err)
		return FallbackRipple()
	}
	if out.StabilityChange == nil {
		s.degrade(ctx, op, fmt.Errorf("%w: stabilityChange missing", errMalformed))
		return FallbackRipple()
	}

	return domain.RippleResult{
		Consequence:     out.Consequence,
		StabilityChange: *out.StabilityChange,
		FutureHeadline:  out.FutureHeadline,
	}
}
