package content

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/timension/internal/domain"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var prompts = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

const (
	headlinePrompt = "headline.tmpl"
	chatPrompt     = "chat.tmpl"
	explorePrompt  = "explore.tmpl"
	timelinePrompt = "timeline.tmpl"
	missionPrompt  = "mission.tmpl"
	ripplePrompt   = "ripple.tmpl"
	chaosPrompt    = "chaos.tmpl"
)

type chatPromptData struct {
	Name       string
	Era        string
	Transcript string
	Message    string
}

type explorePromptData struct{ Query string }

type timelinePromptData struct{ Topic string }

type missionPromptData struct{ Year, Title string }

type ripplePromptData struct{ Original, Replacement string }

func renderPrompt(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// transcript renders chat history one turn per line, unabridged.
func transcript(mentorName string, history []domain.ChatMessage) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := mentorName
		if msg.Sender == domain.SenderUser {
			speaker = "Student"
		}
		lines = append(lines, speaker+": "+msg.Text)
	}
	return strings.Join(lines, "\n")
}
