package domain

// Stability bounds for the timeline meter driven by ripple results.
const (
	MaxStability = 100
	MinStability = 0
)

// ArchiveImageURL is the photograph attached to every front-page article.
// The text model cannot produce images, so headlines always carry this one.
const ArchiveImageURL = "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d1/Gandhi_spinning.jpg/640px-Gandhi_spinning.jpg"

// NewsArticle is the front-page story of the daily edition.
type NewsArticle struct {
	Headline string `json:"headline" validate:"required"`
	Date     string `json:"date"     validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Weather  string `json:"weather"  validate:"required"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// MissionBriefing is the dossier handed to a traveler before a portal jump.
type MissionBriefing struct {
	Codename   string `json:"codename"   validate:"required"`
	Objective  string `json:"objective"  validate:"required"`
	Disguise   string `json:"disguise"   validate:"required"`
	Passphrase string `json:"passphrase" validate:"required"`
}

// TimelineEvent is one entry of a generated chronology.
type TimelineEvent struct {
	Year        string `json:"year"        validate:"required"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// RippleResult describes how history shifted after a traveler rewrote a
// line of dialogue. StabilityChange is negative by convention but is not
// bounds-checked; callers clamp with ApplyStability.
type RippleResult struct {
	Consequence     string `json:"consequence"`
	StabilityChange int    `json:"stabilityChange"`
	FutureHeadline  string `json:"futureHeadline"`
}

// ChaosPuzzle is a historical figure stranded in the wrong era, together
// with the multiple-choice question that sends them home.
type ChaosPuzzle struct {
	ID                 string   `json:"id"`
	Headline           string   `json:"headline"           validate:"required"`
	Scenario           string   `json:"scenario"           validate:"required"`
	MisplacedFigure    string   `json:"misplacedFigure"    validate:"required"`
	CurrentEra         string   `json:"currentEra"         validate:"required"`
	CorrectEra         string   `json:"correctEra"         validate:"required"`
	ChallengeQuestion  string   `json:"challengeQuestion"  validate:"required"`
	Options            []string `json:"options"            validate:"len=4,dive,required"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" validate:"min=0,max=3"`
	RestorationMessage string   `json:"restorationMessage" validate:"required"`
}

// IsCorrect reports whether the option at index solves the puzzle.
func (p *ChaosPuzzle) IsCorrect(index int) bool {
	return index == p.CorrectAnswerIndex
}

// Sender identifies who wrote a chat message.
type Sender string

// Chat participants
const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one turn of a mentor conversation. History lives with the
// caller and is never persisted.
type ChatMessage struct {
	ID        string `json:"id"`
	Sender    Sender `json:"sender"    validate:"required,oneof=user ai"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// GroundingCitation links generated text to a map record.
type GroundingCitation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Exploration is a travel-guide description of a place, with the map
// record it was grounded on when one was returned.
type Exploration struct {
	Text     string             `json:"text"`
	Location *GroundingCitation `json:"location,omitempty"`
}

// ApplyStability adds change to current and clamps the result to the
// stability range.
func ApplyStability(current, change int) int {
	next := current + change
	if next < MinStability {
		return MinStability
	}
	if next > MaxStability {
		return MaxStability
	}
	return next
}
