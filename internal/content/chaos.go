package content

import (
	"context"
	"fmt"

	"github.com/phrazzld/timension/internal/domain"
)

type chaosOutput struct {
	Headline           string   `json:"headline"`
	Scenario           string   `json:"scenario"`
	MisplacedFigure    string   `json:"misplacedFigure"`
	CurrentEra         string   `json:"currentEra"`
	CorrectEra         string   `json:"correctEra"`
	ChallengeQuestion  string   `json:"challengeQuestion"`
	Options            []string `json:"options"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex"`
	RestorationMessage string   `json:"restorationMessage"`
}

// GenerateChaosPuzzle strands a historical figure in the wrong era. On
// failure one of the five stock puzzles is chosen at random.
func (s *Service) GenerateChaosPuzzle(ctx context.Context) domain.ChaosPuzzle {
	const op = "chaos"

	prompt, err := renderPrompt(chaosPrompt, nil)
	if err != nil {
		s.degrade(ctx, op, err)
		return s.randomChaos()
	}

	var out chaosOutput
	if err := s.generateJSON(ctx, prompt, chaosSchema, &out); err != nil {
		s.degrade(ctx, op, err)
		return s.randomChaos()
	}
	if out.CorrectAnswerIndex == nil {
		s.degrade(ctx, op, fmt.Errorf("%w: correctAnswerIndex missing", errMalformed))
		return s.randomChaos()
	}

	puzzle := domain.ChaosPuzzle{
		ID:                 s.newID(),
		Headline:           out.Headline,
		Scenario:           out.Scenario,
		MisplacedFigure:    out.MisplacedFigure,
		CurrentEra:         out.CurrentEra,
		CorrectEra:         out.CorrectEra,
		ChallengeQuestion:  out.ChallengeQuestion,
		Options:            out.Options,
		CorrectAnswerIndex: *out.CorrectAnswerIndex,
		RestorationMessage: out.RestorationMessage,
	}
	if err := s.checkStruct(&puzzle); err != nil {
		s.degrade(ctx, op, err)
		return s.randomChaos()
	}

	return puzzle
}

func (s *Service) randomChaos() domain.ChaosPuzzle {
	i := s.pick(len(chaosPool))
	if i < 0 || i >= len(chaosPool) {
		i = 0
	}
	return copyPuzzle(chaosPool[i])
}
