package storage

import (
	"context"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/elo"

	"github.com/google/uuid"
)

type PlayerStorage interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id int) (domain.Player, error)
	// FindPlayer looks a player up by normalized name.
	FindPlayer(ctx context.Context, normalizedName string) (domain.Player, error)
	AddPlayer(ctx context.Context, player domain.Player, normalizedName string) (domain.Player, error)
}

type TournamentStorage interface {
	CreateTournament(ctx context.Context, t domain.Tournament) error
	GetTournament(ctx context.Context, id uuid.UUID) (domain.Tournament, error)
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
	AddCompetitor(ctx context.Context, tournamentID uuid.UUID, playerID int) error
	// ListCompetitors returns competitors with their club rating, current
	// score and full opponent and color histories ordered by round.
	ListCompetitors(ctx context.Context, tournamentID uuid.UUID) ([]domain.Competitor, error)
}

type RoundStorage interface {
	ListRounds(ctx context.Context, tournamentID uuid.UUID) ([]domain.Round, error)
	ListGames(ctx context.Context, tournamentID uuid.UUID) ([]domain.Game, error)
	// SaveRound stores the round, its games and the history entries it adds,
	// and overwrites competitor scores, all in one transaction. It fails
	// with ErrRoundExists when the round number is taken.
	SaveRound(ctx context.Context, tournamentID uuid.UUID, round domain.Round, scores map[int]float64) error
	RecordResult(ctx context.Context, tournamentID uuid.UUID, gameID int, result domain.Result, scores map[int]float64) error
}

type RatingStorage interface {
	// FinalizeRatings flips the finalized flag and applies the changes to
	// the players. A tournament can be finalized once; later calls fail
	// with ErrAlreadyFinalized and change nothing.
	FinalizeRatings(ctx context.Context, tournamentID uuid.UUID, changes map[int]elo.Change) error
}

type Storage interface {
	PlayerStorage
	TournamentStorage
	RoundStorage
	RatingStorage
}
