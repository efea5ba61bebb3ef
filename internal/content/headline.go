package content

import (
	"context"

	"github.com/phrazzld/timension/internal/domain"
)

// GenerateDailyHeadline writes the front page of the day's edition.
// The article always carries the archive photograph.
func (s *Service) GenerateDailyHeadline(ctx context.Context) domain.NewsArticle {
	const op = "headline"

	prompt, err := renderPrompt(headlinePrompt, nil)
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackHeadline()
	}

	var article domain.NewsArticle
	if err := s.generateJSON(ctx, prompt, headlineSchema, &article); err != nil {
		s.degrade(ctx, op, err)
		return FallbackHeadline()
	}
	if err := s.checkStruct(&article); err != nil {
		s.degrade(ctx, op, err)
		return FallbackHeadline()
	}

	article.ImageURL = domain.ArchiveImageURL
	return article
}
