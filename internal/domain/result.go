package domain

import "strings"

// Result is a game result string as recorded by the club, always read from
// Player1's side.
type Result string

const (
	ResultWin           Result = "1-0"
	ResultLoss          Result = "0-1"
	ResultDraw          Result = "1/2-1/2"
	ResultForfeitWin    Result = "+:-"
	ResultForfeitLoss   Result = "-:+"
	ResultDoubleForfeit Result = "-:-"
	// ResultAbsentHalf and ResultAbsentZero record a missed round with and
	// without partial credit for Player1.
	ResultAbsentHalf Result = "H"
	ResultAbsentZero Result = "Z"
	ResultBye        Result = "bye"
	ResultNotPlayed  Result = "not played"
	ResultPostponed  Result = "postponed"
)

// Outcome is the scoring interpretation of a Result.
type Outcome struct {
	Points1 float64
	Points2 float64
	// Played is true for concrete over-the-board or forfeit outcomes. Only
	// played games feed tie-breaks and rating expectations.
	Played  bool
	Forfeit bool
}

var outcomes = map[Result]Outcome{
	ResultWin:           {Points1: 1, Points2: 0, Played: true},
	ResultLoss:          {Points1: 0, Points2: 1, Played: true},
	ResultDraw:          {Points1: 0.5, Points2: 0.5, Played: true},
	ResultForfeitWin:    {Points1: 1, Points2: 0, Played: true, Forfeit: true},
	ResultForfeitLoss:   {Points1: 0, Points2: 1, Played: true, Forfeit: true},
	ResultDoubleForfeit: {},
	ResultAbsentHalf:    {Points1: 0.5},
	ResultAbsentZero:    {},
	ResultBye:           {Points1: 1},
	ResultNotPlayed:     {},
	ResultPostponed:     {},
}

var aliases = map[string]Result{
	"½-½":     ResultDraw,
	"0.5-0.5": ResultDraw,
	"1f-0f":   ResultForfeitWin,
	"0f-1f":   ResultForfeitLoss,
	"0f-0f":   ResultDoubleForfeit,
	"h":       ResultAbsentHalf,
	"z":       ResultAbsentZero,
	"*":       ResultNotPlayed,
	"":        ResultNotPlayed,
}

// ParseResult maps free text onto the vocabulary. Anything unrecognized is
// ResultNotPlayed, since historical rows carry annotations.
func ParseResult(s string) Result {
	s = strings.TrimSpace(s)
	if _, ok := outcomes[Result(s)]; ok {
		return Result(s)
	}
	lower := strings.ToLower(s)
	if _, ok := outcomes[Result(lower)]; ok {
		return Result(lower)
	}
	if r, ok := aliases[lower]; ok {
		return r
	}
	return ResultNotPlayed
}

// Outcome interprets r. Unknown results score nothing and are not played.
func (r Result) Outcome() Outcome {
	return outcomes[ParseResult(string(r))]
}

// Known reports whether r is part of the vocabulary (including aliases).
func (r Result) Known() bool {
	s := strings.ToLower(strings.TrimSpace(string(r)))
	if _, ok := outcomes[Result(strings.TrimSpace(string(r)))]; ok {
		return true
	}
	if _, ok := outcomes[Result(s)]; ok {
		return true
	}
	_, ok := aliases[s]
	return ok
}
