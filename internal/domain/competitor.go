package domain

import (
	"fmt"
)

// ByeID marks a round without an opponent, both in opponent histories and
// as Pairing.Player2. Competitor ids are therefore strictly positive.
const ByeID = 0

// Competitor is a player's tournament-scoped state at the moment a round is
// paired. The engine reads it and never mutates it.
type Competitor struct {
	ID     int
	Name   string
	Rating int
	Score  float64
	// TieBreak is the caller-supplied secondary sort key for Swiss rounds.
	TieBreak float64

	Opponents []int
	Colors    []Color
	HadBye    bool
}

// PlayedColors returns the color history without bye rounds.
func (c Competitor) PlayedColors() []Color {
	colors := make([]Color, 0, len(c.Colors))
	for _, color := range c.Colors {
		if color != NoColor {
			colors = append(colors, color)
		}
	}
	return colors
}

// ColorBalance is #White - #Black.
func (c Competitor) ColorBalance() int {
	balance := 0
	for _, color := range c.Colors {
		switch color {
		case White:
			balance++
		case Black:
			balance--
		}
	}
	return balance
}

func (c Competitor) Whites() int {
	n := 0
	for _, color := range c.Colors {
		if color == White {
			n++
		}
	}
	return n
}

// LastColor is the most recent White/Black entry, or NoColor.
func (c Competitor) LastColor() Color {
	for i := len(c.Colors) - 1; i >= 0; i-- {
		if c.Colors[i] != NoColor {
			return c.Colors[i]
		}
	}
	return NoColor
}

// HasPlayed reports whether id appears in the opponent history.
func (c Competitor) HasPlayed(id int) bool {
	for _, opp := range c.Opponents {
		if opp == id && opp != ByeID {
			return true
		}
	}
	return false
}

// ValidateCompetitors checks the structural preconditions shared by every
// pairing strategy.
func ValidateCompetitors(competitors []Competitor) error {
	if len(competitors) == 0 {
		return fmt.Errorf("%w: empty competitor list", ErrInvalidInput)
	}
	ids := make(map[int]struct{}, len(competitors))
	for _, c := range competitors {
		if c.ID <= ByeID {
			return fmt.Errorf("%w: competitor id %d must be positive", ErrInvalidInput, c.ID)
		}
		if _, ok := ids[c.ID]; ok {
			return fmt.Errorf("%w: duplicate competitor id %d", ErrInvalidInput, c.ID)
		}
		ids[c.ID] = struct{}{}
	}
	for _, c := range competitors {
		if len(c.Opponents) != len(c.Colors) {
			return fmt.Errorf("%w: competitor %d has %d opponents but %d colors",
				ErrInconsistentHistory, c.ID, len(c.Opponents), len(c.Colors))
		}
		for i, opp := range c.Opponents {
			if opp == ByeID {
				if c.Colors[i] != NoColor {
					return fmt.Errorf("%w: competitor %d has a color in bye round %d",
						ErrInconsistentHistory, c.ID, i+1)
				}
				continue
			}
			if _, ok := ids[opp]; !ok {
				return fmt.Errorf("%w: competitor %d played unknown opponent %d",
					ErrInconsistentHistory, c.ID, opp)
			}
		}
	}
	return nil
}
