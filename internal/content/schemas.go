package content

import "github.com/phrazzld/timension/internal/generation"

var (
	str = generation.String
	num = generation.Integer
)

var headlineSchema = generation.Object(map[string]*generation.Schema{
	"headline": str(),
	"date":     str(),
	"content":  str(),
	"weather":  str(),
}, "headline", "date", "content", "weather")

var timelineSchema = generation.ArrayOf(generation.Object(map[string]*generation.Schema{
	"year":        str(),
	"title":       str(),
	"description": str(),
}, "year", "title", "description"))

var missionSchema = generation.Object(map[string]*generation.Schema{
	"codename":   str(),
	"objective":  str(),
	"disguise":   str(),
	"passphrase": str(),
}, "codename", "objective", "disguise", "passphrase")

var rippleSchema = generation.Object(map[string]*generation.Schema{
	"consequence":     str(),
	"stabilityChange": num(),
	"futureHeadline":  str(),
}, "consequence", "stabilityChange", "futureHeadline")

var chaosSchema = generation.Object(map[string]*generation.Schema{
	"headline":           str(),
	"scenario":           str(),
	"misplacedFigure":    str(),
	"currentEra":         str(),
	"correctEra":         str(),
	"challengeQuestion":  str(),
	"options":            generation.ArrayOf(str()),
	"correctAnswerIndex": num(),
	"restorationMessage": str(),
}, "headline", "scenario", "misplacedFigure", "currentEra", "correctEra",
	"challengeQuestion", "options", "correctAnswerIndex", "restorationMessage")
