package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/pairingserver/gen/model"
	"github.com/goserg/pairingserver/gen/table"
	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/elo"
	migrate "github.com/goserg/pairingserver/internal/migrate"
	"github.com/goserg/pairingserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.Storage = (*Storage)(nil)

// New opens the database file and migrates it to the latest schema.
func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := storage.Open(fileName)
	if err != nil {
		return nil, err
	}
	err = migrate.UpServerDB(db)
	if err != nil {
		return nil, err
	}
	log.WithField("file", fileName).Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.Rating.DESC(), table.Players.ID.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players), nil
}

func (s *Storage) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	return s.getPlayer(ctx, table.Players.ID.EQ(sqlite.Int(int64(id))))
}

func (s *Storage) FindPlayer(ctx context.Context, normalizedName string) (domain.Player, error) {
	return s.getPlayer(ctx, table.Players.NormalizedName.EQ(sqlite.String(normalizedName)))
}

func (s *Storage) getPlayer(ctx context.Context, where sqlite.BoolExpression) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(where).
		QueryContext(ctx, s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, fmt.Errorf("player: %w", storage.ErrNotFound)
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player), nil
}

func (s *Storage) AddPlayer(ctx context.Context, player domain.Player, normalizedName string) (domain.Player, error) {
	if player.RegisteredAt.IsZero() {
		player.RegisteredAt = time.Now()
	}
	var dbPlayer model.Players
	err := table.Players.
		INSERT(table.Players.MutableColumns).
		MODEL(convertPlayerFromDomain(player, normalizedName)).
		RETURNING(table.Players.AllColumns).
		QueryContext(ctx, s.db, &dbPlayer)
	if err != nil {
		if isConstraintViolation(err) {
			return domain.Player{}, fmt.Errorf("%w: player %q already exists", domain.ErrInvalidInput, player.Name)
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(dbPlayer), nil
}

func (s *Storage) CreateTournament(ctx context.Context, t domain.Tournament) error {
	_, err := table.Tournaments.
		INSERT(table.Tournaments.AllColumns).
		MODEL(convertTournamentFromDomain(t)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) GetTournament(ctx context.Context, id uuid.UUID) (domain.Tournament, error) {
	var t model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		WHERE(table.Tournaments.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &t)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Tournament{}, fmt.Errorf("tournament %s: %w", id, storage.ErrNotFound)
		}
		return domain.Tournament{}, err
	}
	return convertTournamentToDomain(t)
}

func (s *Storage) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	var dest []model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		ORDER_BY(table.Tournaments.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	tournaments := make([]domain.Tournament, 0, len(dest))
	for _, t := range dest {
		converted, err := convertTournamentToDomain(t)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, converted)
	}
	return tournaments, nil
}

func (s *Storage) AddCompetitor(ctx context.Context, tournamentID uuid.UUID, playerID int) error {
	_, err := table.Competitors.
		INSERT(table.Competitors.AllColumns).
		MODEL(model.Competitors{
			TournamentID: tournamentID.String(),
			PlayerID:     int32(playerID),
		}).
		ExecContext(ctx, s.db)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: player %d cannot join tournament %s", domain.ErrInvalidInput, playerID, tournamentID)
		}
		return err
	}
	return nil
}

func (s *Storage) ListCompetitors(ctx context.Context, tournamentID uuid.UUID) ([]domain.Competitor, error) {
	var dest []struct {
		model.Competitors
		Players model.Players
	}
	err := table.Competitors.
		SELECT(table.Competitors.AllColumns, table.Players.AllColumns).
		FROM(table.Competitors.
			INNER_JOIN(table.Players, table.Players.ID.EQ(table.Competitors.PlayerID)),
		).
		WHERE(table.Competitors.TournamentID.EQ(sqlite.UUID(tournamentID))).
		ORDER_BY(table.Competitors.PlayerID.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}

	var history []model.HistoryEntries
	err = table.HistoryEntries.
		SELECT(table.HistoryEntries.AllColumns).
		FROM(table.HistoryEntries).
		WHERE(table.HistoryEntries.TournamentID.EQ(sqlite.UUID(tournamentID))).
		ORDER_BY(table.HistoryEntries.PlayerID.ASC(), table.HistoryEntries.Round.ASC()).
		QueryContext(ctx, s.db, &history)
	if err != nil {
		return nil, err
	}

	competitors := make([]domain.Competitor, 0, len(dest))
	index := make(map[int]int, len(dest))
	for _, row := range dest {
		id := int(row.Competitors.PlayerID)
		index[id] = len(competitors)
		competitors = append(competitors, domain.Competitor{
			ID:     id,
			Name:   row.Players.Name,
			Rating: int(row.Players.Rating),
			Score:  row.Competitors.Score,
			HadBye: row.Competitors.HadBye,
		})
	}
	for _, h := range history {
		i, ok := index[int(h.PlayerID)]
		if !ok {
			return nil, fmt.Errorf("%w: history of unknown competitor %d", domain.ErrInconsistentHistory, h.PlayerID)
		}
		competitors[i].Opponents = append(competitors[i].Opponents, int(h.OpponentID))
		competitors[i].Colors = append(competitors[i].Colors, domain.ParseColor(h.Color))
	}
	return competitors, nil
}

func (s *Storage) ListRounds(ctx context.Context, tournamentID uuid.UUID) ([]domain.Round, error) {
	var rounds []model.Rounds
	err := table.Rounds.
		SELECT(table.Rounds.AllColumns).
		FROM(table.Rounds).
		WHERE(table.Rounds.TournamentID.EQ(sqlite.UUID(tournamentID))).
		ORDER_BY(table.Rounds.Number.ASC()).
		QueryContext(ctx, s.db, &rounds)
	if err != nil {
		return nil, err
	}
	games, err := s.ListGames(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	numbers := make([]int, 0, len(rounds))
	for _, r := range rounds {
		numbers = append(numbers, int(r.Number))
	}
	return convertGamesToRounds(numbers, games), nil
}

func (s *Storage) ListGames(ctx context.Context, tournamentID uuid.UUID) ([]domain.Game, error) {
	var games []model.Games
	err := table.Games.
		SELECT(table.Games.AllColumns).
		FROM(table.Games).
		WHERE(table.Games.TournamentID.EQ(sqlite.UUID(tournamentID))).
		ORDER_BY(table.Games.Round.ASC(), table.Games.Board.ASC()).
		QueryContext(ctx, s.db, &games)
	if err != nil {
		return nil, err
	}
	return convertGamesToDomain(games), nil
}

func (s *Storage) SaveRound(ctx context.Context, tournamentID uuid.UUID, round domain.Round, scores map[int]float64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := table.Rounds.
			INSERT(table.Rounds.AllColumns).
			MODEL(model.Rounds{
				TournamentID: tournamentID.String(),
				Number:       int32(round.Number),
				CreatedAt:    time.Now(),
			}).
			ExecContext(ctx, tx)
		if err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("round %d: %w", round.Number, storage.ErrRoundExists)
			}
			return err
		}

		_, err = table.Games.
			INSERT(table.Games.MutableColumns).
			MODELS(convertRoundToGames(tournamentID, round)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		_, err = table.HistoryEntries.
			INSERT(table.HistoryEntries.AllColumns).
			MODELS(convertRoundToHistory(tournamentID, round)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}

		if round.Bye != nil {
			_, err = table.Competitors.
				UPDATE(table.Competitors.HadBye).
				SET(sqlite.Bool(true)).
				WHERE(competitorRow(tournamentID, round.Bye.Player1)).
				ExecContext(ctx, tx)
			if err != nil {
				return err
			}
		}
		return updateScores(ctx, tx, tournamentID, scores)
	})
}

func (s *Storage) RecordResult(ctx context.Context, tournamentID uuid.UUID, gameID int, result domain.Result, scores map[int]float64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := table.Games.
			UPDATE(table.Games.Result).
			SET(sqlite.String(string(result))).
			WHERE(
				table.Games.ID.EQ(sqlite.Int(int64(gameID))).
					AND(table.Games.TournamentID.EQ(sqlite.UUID(tournamentID))),
			).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("game %d: %w", gameID, storage.ErrNotFound)
		}
		return updateScores(ctx, tx, tournamentID, scores)
	})
}

func (s *Storage) FinalizeRatings(ctx context.Context, tournamentID uuid.UUID, changes map[int]elo.Change) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := table.Tournaments.
			UPDATE(table.Tournaments.Finalized).
			SET(sqlite.Bool(true)).
			WHERE(
				table.Tournaments.ID.EQ(sqlite.UUID(tournamentID)).
					AND(table.Tournaments.Finalized.EQ(sqlite.Bool(false))),
			).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("tournament %s: %w", tournamentID, storage.ErrAlreadyFinalized)
		}

		for playerID, c := range changes {
			_, err = table.Players.
				UPDATE(table.Players.Rating, table.Players.PeakRating).
				SET(sqlite.Int(int64(c.New)), sqlite.Int(int64(c.Peak))).
				WHERE(table.Players.ID.EQ(sqlite.Int(int64(playerID)))).
				ExecContext(ctx, tx)
			if err != nil {
				return err
			}
			_, err = table.RatingChanges.
				INSERT(table.RatingChanges.AllColumns).
				MODEL(model.RatingChanges{
					TournamentID: tournamentID.String(),
					PlayerID:     int32(playerID),
					OldRating:    int32(c.Old),
					NewRating:    int32(c.New),
					Delta:        int32(c.Delta),
				}).
				ExecContext(ctx, tx)
			if err != nil {
				return err
			}
		}
		s.log.WithFields(logrus.Fields{
			"tournament": tournamentID,
			"players":    len(changes),
		}).Debug("rating changes written")
		return nil
	})
}

func competitorRow(tournamentID uuid.UUID, playerID int) sqlite.BoolExpression {
	return table.Competitors.TournamentID.EQ(sqlite.UUID(tournamentID)).
		AND(table.Competitors.PlayerID.EQ(sqlite.Int(int64(playerID))))
}

func updateScores(ctx context.Context, tx *sql.Tx, tournamentID uuid.UUID, scores map[int]float64) error {
	for playerID, score := range scores {
		_, err := table.Competitors.
			UPDATE(table.Competitors.Score).
			SET(sqlite.Float(score)).
			WHERE(competitorRow(tournamentID, playerID)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.WithError(rbErr).Error("rollback failed")
		}
		return err
	}
	return tx.Commit()
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
