package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	Swiss      Kind = "swiss"
	RoundRobin Kind = "round-robin"
)

// TieBreakPolicy selects the primary tie-break of a tournament.
type TieBreakPolicy string

const (
	PolicyBuchholz       TieBreakPolicy = "buchholz"
	PolicyWeightedSquare TieBreakPolicy = "weighted-square"
)

type Tournament struct {
	ID         uuid.UUID
	Name       string
	Kind       Kind
	RoundCount int
	TieBreak   TieBreakPolicy
	Finalized  bool
	CreatedAt  time.Time
}

func (t Tournament) Validate() error {
	switch t.Kind {
	case Swiss, RoundRobin:
	default:
		return fmt.Errorf("%w: unknown tournament kind %q", ErrInvalidInput, t.Kind)
	}
	switch t.TieBreak {
	case PolicyBuchholz, PolicyWeightedSquare:
	default:
		return fmt.Errorf("%w: unknown tie-break policy %q", ErrInvalidInput, t.TieBreak)
	}
	if t.RoundCount <= 0 {
		return fmt.Errorf("%w: round count must be positive", ErrInvalidInput)
	}
	return nil
}

// Game is a persisted pairing together with its result.
type Game struct {
	ID      int
	Round   int
	Board   int
	Player1 int
	Player2 int
	Color1  Color
	Color2  Color
	Result  Result
	Rematch bool
}

func (g Game) IsBye() bool {
	return g.Player2 == ByeID
}

// Participation links a competitor to its current tournament score.
type Participation struct {
	CompetitorID int
	Score        float64
}
