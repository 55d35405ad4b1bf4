package web

import (
	"errors"
	"strings"

	"github.com/goserg/pairingserver/internal/domain"
)

type createPlayer struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

var (
	ErrEmptyName     = errors.New("name must not be empty")
	ErrBadRating     = errors.New("rating must be positive")
	ErrBadKind       = errors.New(`kind must be "swiss" or "round-robin"`)
	ErrBadRounds     = errors.New("rounds must be positive")
	ErrBadTieBreak   = errors.New(`tie_break must be "buchholz" or "weighted-square"`)
	ErrMissingPlayer = errors.New("player_id must be set")
)

func (c createPlayer) Validate() error {
	var err error
	if strings.TrimSpace(c.Name) == "" {
		err = errors.Join(err, ErrEmptyName)
	}
	if c.Rating <= 0 {
		err = errors.Join(err, ErrBadRating)
	}
	return err
}

type createTournament struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Rounds   int    `json:"rounds"`
	TieBreak string `json:"tie_break"`
}

func (c createTournament) Validate() error {
	var err error
	if strings.TrimSpace(c.Name) == "" {
		err = errors.Join(err, ErrEmptyName)
	}
	switch domain.Kind(c.Kind) {
	case domain.Swiss, domain.RoundRobin:
	default:
		err = errors.Join(err, ErrBadKind)
	}
	if c.Rounds <= 0 {
		err = errors.Join(err, ErrBadRounds)
	}
	switch domain.TieBreakPolicy(c.TieBreak) {
	case "", domain.PolicyBuchholz, domain.PolicyWeightedSquare:
	default:
		err = errors.Join(err, ErrBadTieBreak)
	}
	return err
}

func (c createTournament) convertToDomainTournament() domain.Tournament {
	return domain.Tournament{
		Name:       c.Name,
		Kind:       domain.Kind(c.Kind),
		RoundCount: c.Rounds,
		TieBreak:   domain.TieBreakPolicy(c.TieBreak),
	}
}

type addCompetitor struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
}

func (a addCompetitor) Validate() error {
	if a.PlayerID <= 0 && strings.TrimSpace(a.Name) == "" {
		return ErrMissingPlayer
	}
	return nil
}

type recordResult struct {
	Result string `json:"result"`
}
