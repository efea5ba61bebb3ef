package content

import (
	"context"
	"fmt"

	"github.com/phrazzld/timension/internal/domain"
)

// GenerateTimeline lists the key events of topic in chronological order.
func (s *Service) GenerateTimeline(ctx context.Context, topic string) []domain.TimelineEvent {
	const op = "timeline"

	prompt, err := renderPrompt(timelinePrompt, timelinePromptData{Topic: topic})
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackTimeline()
	}

	var events []domain.TimelineEvent
	if err := s.generateJSON(ctx, prompt, timelineSchema, &events); err != nil {
		s.degrade(ctx, op, err)
		return FallbackTimeline()
	}
	if len(events) == 0 {
		s.degrade(ctx, op, fmt.Errorf("%w: no events", errMalformed))
		return FallbackTimeline()
	}
	for i := range events {
		if err := s.checkStruct(&events[i]); err != nil {
			s.degrade(ctx, op, fmt.Errorf("event %d: %w", i, err))
			return FallbackTimeline()
		}
	}

	return events
}
