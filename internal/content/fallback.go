package content

import "github.com/phrazzld/timension/internal/domain"

// Replies used when the model cannot be reached or says nothing.
const (
	FallbackChatReply   = "The ink is smudged... I cannot hear you clearly."
	EmptyChatReply      = "..."
	FallbackExploreText = "The compass spins wildly... connection lost."
	EmptyExploreText    = "The archives are silent on this location."
)

// FallbackHeadline is the front page printed when no story can be generated.
func FallbackHeadline() domain.NewsArticle {
	return domain.NewsArticle{
		Headline: "MAHATMA ARRESTED.",
		Date:     "SATURDAY, MARCH 11, 1922",
		Content: "GREAT EXCITEMENT PREVAILS. Mahatma Gandhi was arrested at the Sabarmati Ashram " +
			"on the charge of sedition. He made no resistance and asked the people to preserve " +
			"perfect peace. The arrest was made by Mr. Healey, the Superintendent of Police, at 10:30 PM.",
		Weather:  "Tense Atmosphere",
		ImageURL: domain.ArchiveImageURL,
	}
}

// FallbackTimeline is the chronology returned for any failed topic.
func FallbackTimeline() []domain.TimelineEvent {
	return []domain.TimelineEvent{
		{Year: "1920", Title: "Dawn of Movement", Description: "The call for Non-Cooperation echoes across the land."},
		{Year: "1922", Title: "Chauri Chaura", Description: "A tragic turn leads Gandhi to withdraw the movement."},
		{Year: "1930", Title: "Salt March", Description: "A pinch of salt shakes the foundations of an empire."},
	}
}

// FallbackMission is the briefing issued for any failed portal.
func FallbackMission() domain.MissionBriefing {
	return domain.MissionBriefing{
		Codename:   "OPERATION CHRONOS",
		Objective:  "Observe the event without disrupting the timeline. Record key dialogue.",
		Disguise:   "Period-appropriate tunic or merchant robes.",
		Passphrase: "The owl flies at midnight.",
	}
}

// FallbackRipple is the outcome reported when a ripple cannot be computed.
func FallbackRipple() domain.RippleResult {
	return domain.RippleResult{
		Consequence:     "The timeline shudders. Your words have slightly altered the mood of the era.",
		StabilityChange: -5,
		FutureHeadline:  "Small Shifts Detected in Archives",
	}
}

// FallbackExploration is the answer given when exploration fails.
func FallbackExploration() domain.Exploration {
	return domain.Exploration{Text: FallbackExploreText}
}

var chaosPool = []domain.ChaosPuzzle{
	{
		ID:                 "chaos-1",
		Headline:           "NIKOLA TESLA ELECTRIFIES THE PYRAMIDS!",
		Scenario:           "Citizens of Ancient Egypt are confused as a mustachioed man installs a Wardenclyffe Tower atop the Great Sphinx.",
		MisplacedFigure:    "Nikola Tesla",
		CurrentEra:         "Ancient Egypt (2500 BC)",
		CorrectEra:         "Late 19th Century",
		ChallengeQuestion:  "To restore Tesla to 1895, identify the key principle he is searching for, which doesn't exist here:",
		Options:            []string{"Limestone Cutting", "Alternating Current", "Papyrus Scrolls", "Chariot Engineering"},
		CorrectAnswerIndex: 1,
		RestorationMessage: "ZAP! Tesla vanishes in a bolt of blue lightning, returning to his Colorado Springs lab.",
	},
	{
		ID:                 "chaos-2",
		Headline:           "EMPEROR NAPOLEON DUELS SHERIFF AT HIGH NOON!",
		Scenario:           "The Little Corporal is organizing outlaws into a 'Grande Armée' in a dusty Arizona saloon, demanding better artillery than six-shooters.",
		MisplacedFigure:    "Napoleon Bonaparte",
		CurrentEra:         "Wild West (1880s)",
		CorrectEra:         "Early 19th Century",
		ChallengeQuestion:  "To send Napoleon back to 1815, remind him of his true military strategy:",
		Options:            []string{"Guerilla Warfare", "The Napoleonic Code & Artillery", "Trench Warfare", "Drone Strikes"},
		CorrectAnswerIndex: 1,
		RestorationMessage: "Vive la France! Napoleon fades away, presumably to Waterloo.",
	},
	{
		ID:                 "chaos-3",
		Headline:           "BARD IN ORBIT: 'TO BE OR NOT TO BE' IN ZERO G!",
		Scenario:           "William Shakespeare is floating in the International Space Station, trying to dip a feather quill into a floating blob of ink.",
		MisplacedFigure:    "William Shakespeare",
		CurrentEra:         "Space Age (2020s)",
		CorrectEra:         "Elizabethan Era (1600s)",
		ChallengeQuestion:  "Help the Bard return to the Globe Theatre by identifying his meter:",
		Options:            []string{"Free Verse", "Iambic Pentameter", "Haiku", "Binary Code"},
		CorrectAnswerIndex: 1,
		RestorationMessage: "A curtain falls from nowhere. When it rises, the Bard is gone.",
	},
	{
		ID:                 "chaos-4",
		Headline:           "KHAN CONQUERS STOCK MARKET WITH HORSEBACK RAID!",
		Scenario:           "Genghis Khan gallops down Wall Street, confusing stock tickers for enemy signals and demanding tribute from terrified bankers.",
		MisplacedFigure:    "Genghis Khan",
		CurrentEra:         "Roaring Twenties (1929)",
		CorrectEra:         "13th Century",
		ChallengeQuestion:  "To return the Khan to the steppes, remind him of his primary transport:",
		Options:            []string{"Steam Train", "Mongol Horse", "Model T Ford", "Armored Tank"},
		CorrectAnswerIndex: 1,
		RestorationMessage: "Dust swirls, hoofbeats thunder, and the Khan rides back into the past.",
	},
	{
		ID:                 "chaos-5",
		Headline:           "DA VINCI REINVENTS THE IPHONE!",
		Scenario:           "Leonardo is dismantling a smartphone in a Silicon Valley coffee shop, sketching its circuits as 'magical anatomy'.",
		MisplacedFigure:    "Leonardo da Vinci",
		CurrentEra:         "Information Age (2024)",
		CorrectEra:         "Italian Renaissance",
		ChallengeQuestion:  "To send Leonardo home, give him the tool he actually mastered:",
		Options:            []string{"3D Printer", "Paintbrush & Chisel", "Laser Cutter", "Microchip"},
		CorrectAnswerIndex: 1,
		RestorationMessage: "The sketch glows golden, and Leonardo steps through the parchment back to Florence.",
	},
}

// ChaosPool returns copies of the five stock puzzles.
func ChaosPool() []domain.ChaosPuzzle {
	out := make([]domain.ChaosPuzzle, len(chaosPool))
	for i, p := range chaosPool {
		out[i] = copyPuzzle(p)
	}
	return out
}

func copyPuzzle(p domain.ChaosPuzzle) domain.ChaosPuzzle {
	p.Options = append([]string(nil), p.Options...)
	return p
}
