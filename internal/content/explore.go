package content

import (
	"context"
	"strings"

	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/generation"
)

// ExploreLocation describes a place like a vintage travel guide, grounded
// on Google Maps. Location is set from the first map citation, if any.
func (s *Service) ExploreLocation(ctx context.Context, query string) domain.Exploration {
	const op = "explore"

	prompt, err := renderPrompt(explorePrompt, explorePromptData{Query: query})
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackExploration()
	}

	resp, err := s.generate(ctx, generation.Request{Prompt: prompt, UseMaps: true})
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackExploration()
	}

	out := domain.Exploration{Text: resp.Text}
	if strings.TrimSpace(out.Text) == "" {
		out.Text = EmptyExploreText
	}
	for _, c := range resp.Citations {
		if c.Title == "" && c.URI == "" {
			continue
		}
		out.Location = &domain.GroundingCitation{Title: c.Title, URI: c.URI}
		break
	}
	return out
}
