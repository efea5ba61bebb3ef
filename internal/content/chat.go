package content

import (
	"context"
	"strings"

	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/generation"
)

// ChatWithMentor answers message in the voice of the named mentor. The
// whole history is replayed in the prompt.
func (s *Service) ChatWithMentor(
	ctx context.Context,
	name, era string,
	history []domain.ChatMessage,
	message string,
) string {
	const op = "chat"

	prompt, err := renderPrompt(chatPrompt, chatPromptData{
		Name:       name,
		Era:        era,
		Transcript: transcript(name, history),
		Message:    message,
	})
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackChatReply
	}

	resp, err := s.generate(ctx, generation.Request{Prompt: prompt})
	if err != nil {
		s.degrade(ctx, op, err)
		return FallbackChatReply
	}

	if strings.TrimSpace(resp.Text) == "" {
		return EmptyChatReply
	}
	return resp.Text
}
