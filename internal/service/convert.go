package service

import (
	"github.com/goserg/pairingserver/internal/domain"
)

func convertCompetitorsToParticipations(competitors []domain.Competitor) []domain.Participation {
	converted := make([]domain.Participation, 0, len(competitors))
	for _, c := range competitors {
		converted = append(converted, domain.Participation{
			CompetitorID: c.ID,
			Score:        c.Score,
		})
	}
	return converted
}

// convertRoundToGames mirrors what storage writes for a fresh round: boards
// are unplayed and the bye carries its point.
func convertRoundToGames(round domain.Round) []domain.Game {
	games := make([]domain.Game, 0, len(round.Pairings)+1)
	for i, p := range round.All() {
		g := domain.Game{
			Round:   round.Number,
			Board:   i + 1,
			Player1: p.Player1,
			Player2: p.Player2,
			Color1:  p.Color1,
			Color2:  p.Color2,
			Result:  domain.ResultNotPlayed,
			Rematch: p.Rematch,
		}
		if p.IsBye() {
			g.Result = domain.ResultBye
		}
		games = append(games, g)
	}
	return games
}

// scoresFor derives every competitor's score from the games, including
// competitors without any point yet.
func scoresFor(competitors []domain.Competitor, scores map[int]float64) map[int]float64 {
	all := make(map[int]float64, len(competitors))
	for _, c := range competitors {
		all[c.ID] = scores[c.ID]
	}
	return all
}
