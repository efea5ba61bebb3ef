package domain

// Difficulty grades a time portal expedition.
type Difficulty string

// Portal difficulties
const (
	DifficultyBeginner Difficulty = "Beginner"
	DifficultyScholar  Difficulty = "Scholar"
	DifficultyTimeLord Difficulty = "Time Lord"
)

// Mentor is a historical figure a traveler can correspond with.
type Mentor struct {
	ID     string `json:"id"     yaml:"id"     validate:"required"`
	Name   string `json:"name"   yaml:"name"   validate:"required"`
	Role   string `json:"role"   yaml:"role"   validate:"required"`
	Era    string `json:"era"    yaml:"era"    validate:"required"`
	Avatar string `json:"avatar" yaml:"avatar" validate:"required"`
}

// TimePortal is a classified expedition listing.
type TimePortal struct {
	ID          string     `json:"id"          yaml:"id"          validate:"required"`
	Year        string     `json:"year"        yaml:"year"        validate:"required"`
	Title       string     `json:"title"       yaml:"title"       validate:"required"`
	Description string     `json:"description" yaml:"description" validate:"required"`
	Difficulty  Difficulty `json:"difficulty"  yaml:"difficulty"  validate:"required,oneof=Beginner Scholar 'Time Lord'"`
}

// ChroniclePanel is one panel of the fixed comic strip whose dialogue a
// traveler can rewrite to trigger a time ripple.
type ChroniclePanel struct {
	ID    int    `json:"id"    yaml:"id"    validate:"gte=1"`
	Text  string `json:"text"  yaml:"text"  validate:"required"`
	Image string `json:"image" yaml:"image" validate:"required,url"`
}
