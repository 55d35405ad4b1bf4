package web

import (
	"errors"
	"time"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/elo"
)

type errorResponse struct {
	Errors []string `json:"errors"`
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func newErrorResponse(err error) errorResponse {
	var resp errorResponse
	for _, err := range unwrap(err) {
		resp.Errors = append(resp.Errors, err.Error())
	}
	return resp
}

type playerResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Rating       int       `json:"rating"`
	PeakRating   int       `json:"peak_rating"`
	RegisteredAt time.Time `json:"registered_at"`
}

func newPlayerResponse(p domain.Player) playerResponse {
	return playerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Rating:       p.Rating,
		PeakRating:   p.PeakRating,
		RegisteredAt: p.RegisteredAt,
	}
}

type tournamentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Rounds    int       `json:"rounds"`
	TieBreak  string    `json:"tie_break"`
	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"created_at"`
}

func newTournamentResponse(t domain.Tournament) tournamentResponse {
	return tournamentResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Kind:      string(t.Kind),
		Rounds:    t.RoundCount,
		TieBreak:  string(t.TieBreak),
		Finalized: t.Finalized,
		CreatedAt: t.CreatedAt,
	}
}

type competitorResponse struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating"`
	Score     float64  `json:"score"`
	Opponents []int    `json:"opponents"`
	Colors    []string `json:"colors"`
	HadBye    bool     `json:"had_bye"`
}

func newCompetitorResponse(c domain.Competitor) competitorResponse {
	colors := make([]string, 0, len(c.Colors))
	for _, color := range c.Colors {
		colors = append(colors, color.String())
	}
	return competitorResponse{
		ID:        c.ID,
		Name:      c.Name,
		Rating:    c.Rating,
		Score:     c.Score,
		Opponents: c.Opponents,
		Colors:    colors,
		HadBye:    c.HadBye,
	}
}

type boardResponse struct {
	Board   int  `json:"board"`
	White   int  `json:"white"`
	Black   int  `json:"black"`
	Rematch bool `json:"rematch,omitempty"`
}

type roundResponse struct {
	Number int             `json:"number"`
	Boards []boardResponse `json:"boards"`
	Bye    *int            `json:"bye,omitempty"`
}

func newRoundResponse(r domain.Round) roundResponse {
	resp := roundResponse{Number: r.Number, Boards: make([]boardResponse, 0, len(r.Pairings))}
	for i, p := range r.Pairings {
		resp.Boards = append(resp.Boards, boardResponse{
			Board:   i + 1,
			White:   p.White(),
			Black:   p.Black(),
			Rematch: p.Rematch,
		})
	}
	if r.Bye != nil {
		id := r.Bye.Player1
		resp.Bye = &id
	}
	return resp
}

type gameResponse struct {
	ID      int    `json:"id"`
	Round   int    `json:"round"`
	Board   int    `json:"board"`
	Player1 int    `json:"player1"`
	Player2 int    `json:"player2"`
	Color1  string `json:"color1"`
	Result  string `json:"result"`
}

func newGameResponse(g domain.Game) gameResponse {
	return gameResponse{
		ID:      g.ID,
		Round:   g.Round,
		Board:   g.Board,
		Player1: g.Player1,
		Player2: g.Player2,
		Color1:  g.Color1.String(),
		Result:  string(g.Result),
	}
}

type standingResponse struct {
	Rank            int     `json:"rank"`
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Rating          int     `json:"rating"`
	Score           float64 `json:"score"`
	Buchholz        float64 `json:"buchholz"`
	BuchholzCut1    float64 `json:"buchholz_cut1"`
	SonnebornBerger float64 `json:"sonneborn_berger"`
	WeightedSquare  float64 `json:"weighted_square"`
}

func newStandingResponse(s domain.Standing) standingResponse {
	return standingResponse{
		Rank:            s.Rank,
		ID:              s.CompetitorID,
		Name:            s.Name,
		Rating:          s.Rating,
		Score:           s.Score,
		Buchholz:        s.TieBreaks.Buchholz,
		BuchholzCut1:    s.TieBreaks.BuchholzCut1,
		SonnebornBerger: s.TieBreaks.SonnebornBerger,
		WeightedSquare:  s.TieBreaks.WeightedSquare,
	}
}

type ratingChangeResponse struct {
	ID    int `json:"id"`
	Old   int `json:"old"`
	New   int `json:"new"`
	Delta int `json:"delta"`
	Peak  int `json:"peak"`
}

func newRatingChangeResponse(id int, c elo.Change) ratingChangeResponse {
	return ratingChangeResponse{ID: id, Old: c.Old, New: c.New, Delta: c.Delta, Peak: c.Peak}
}

type previewResponse struct {
	Player   ratingChangeResponse `json:"player"`
	Opponent ratingChangeResponse `json:"opponent"`
}
