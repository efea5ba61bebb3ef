package content

import (
	"context"

	"github.com/phrazzld/timension/internal/domain"
)

// GetMissionBriefing prepares the dossier for a jump to title in year.
func (s *Service) GetMissionBriefing(ctx context.Context, year, title string) domain.MissionBriefing {
	const op = "mission"

	prompt, err := renderPrompt(missionPrompt, missionPromptData{Year: year, Title: title})
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackMission()
	}

	var briefing domain.MissionBriefing
	if err := s.generateJSON(ctx, prompt, missionSchema, &briefing); err != nil {
		s.degrade(ctx, op, err)
		return FallbackMission()
	}
	if err := s.checkStruct(&briefing); err != nil {
		s.degrade(ctx, op, err)
		return FallbackMission()
	}

	return briefing
}
