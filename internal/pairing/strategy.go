// Package pairing produces the next round of a tournament from a snapshot
// of its competitors and previous rounds. Nothing here performs I/O or keeps
// state between calls.
package pairing

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/sirupsen/logrus"
)

// Strategy pairs one round. round is 1-based and previous must hold exactly
// round-1 rounds in chronological order.
type Strategy interface {
	GeneratePairings(competitors []domain.Competitor, round int, previous []domain.Round) (domain.Round, error)
}

// Observer is notified about last-resort decisions taken while pairing.
type Observer interface {
	ColorCoinFlip()
	ForcedRematch(p domain.Pairing)
	// ColorGuardDropped reports a Swiss round paired without color
	// obligations because no assignment honoring them exists.
	ColorGuardDropped(round int)
}

type nopObserver struct{}

func (nopObserver) ColorCoinFlip()               {}
func (nopObserver) ForcedRematch(domain.Pairing) {}
func (nopObserver) ColorGuardDropped(int)        {}

const defaultSearchBudget = 200_000

type Options struct {
	// Rand drives the final color coin flip. Seed it for reproducible runs.
	Rand *rand.Rand
	Log  logrus.FieldLogger
	// SearchBudget bounds the number of candidates the Swiss search may try
	// per stage before falling back.
	SearchBudget int
	Observer     Observer
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Log = l
	}
	if o.SearchBudget <= 0 {
		o.SearchBudget = defaultSearchBudget
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
	return o
}

// ForTournament picks the strategy matching the tournament kind.
func ForTournament(t domain.Tournament, opts Options) (Strategy, error) {
	switch t.Kind {
	case domain.Swiss:
		return NewSwiss(opts), nil
	case domain.RoundRobin:
		return NewRoundRobin(t.RoundCount, opts), nil
	default:
		return nil, fmt.Errorf("%w: unknown tournament kind %q", domain.ErrInvalidInput, t.Kind)
	}
}

func validateRequest(competitors []domain.Competitor, round int, previous []domain.Round) error {
	if round < 1 {
		return fmt.Errorf("%w: round number %d", domain.ErrInvalidInput, round)
	}
	if len(previous) != round-1 {
		return fmt.Errorf("%w: round %d requires %d previous rounds, got %d",
			domain.ErrInvalidInput, round, round-1, len(previous))
	}
	return domain.ValidateCompetitors(competitors)
}
