package web

import (
	"errors"
	"slices"
	"strconv"

	"github.com/goserg/pairingserver/internal/config"
	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/metrics"
	"github.com/goserg/pairingserver/internal/service"
	"github.com/goserg/pairingserver/internal/storage"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	service *service.TournamentService
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(l *logrus.Logger, ts *service.TournamentService, m *metrics.Metrics, cfg config.Server) *Server {
	server := Server{
		service: ts,
		cfg:     cfg,
		log: l.WithFields(map[string]interface{}{
			"from": "web",
		}),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Use(recover.New())
	app.Get(home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(apiTournaments)
	})
	app.Get(metricsPath, adaptor.HTTPHandler(m.Handler()))

	app.Get(apiPlayers, server.handleListPlayers)
	app.Post(apiPlayers, server.handleCreatePlayer)
	app.Get(apiPlayer, server.handleGetPlayer)
	app.Get(apiPreview, server.handlePreview)

	app.Get(apiTournaments, server.handleListTournaments)
	app.Post(apiTournaments, server.handleCreateTournament)
	app.Get(apiTournament, server.handleGetTournament)
	app.Get(apiCompetitors, server.handleListCompetitors)
	app.Post(apiCompetitors, server.handleAddCompetitor)
	app.Get(apiRounds, server.handleListRounds)
	app.Post(apiRound, server.handleGeneratePairings)
	app.Get(apiSchedule, server.handleSchedule)
	app.Get(apiGames, server.handleListGames)
	app.Put(apiGameResult, server.handleRecordResult)
	app.Get(apiStandings, server.handleStandings)
	app.Post(apiFinalize, server.handleFinalize)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithField("addr", addr).Info("listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInconsistentHistory):
		code = fiber.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, storage.ErrRoundExists),
		errors.Is(err, storage.ErrAlreadyFinalized),
		errors.Is(err, service.ErrTournamentBusy):
		code = fiber.StatusConflict
	case errors.Is(err, domain.ErrNoValidPairing):
		code = fiber.StatusUnprocessableEntity
	}
	if code == fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	return ctx.Status(code).JSON(newErrorResponse(err))
}

func tournamentID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid tournament id")
	}
	return id, nil
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.service.ListPlayers(ctx.Context())
	if err != nil {
		return err
	}
	resp := make([]playerResponse, 0, len(players))
	for _, p := range players {
		resp = append(resp, newPlayerResponse(p))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	p, err := s.service.CreatePlayer(ctx.Context(), req.Name, req.Rating)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(newPlayerResponse(p))
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid player id")
	}
	p, err := s.service.GetPlayer(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newPlayerResponse(p))
}

func (s *Server) handlePreview(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid player id")
	}
	opponent := ctx.QueryInt("opponent")
	if opponent <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "opponent must be set")
	}
	player, opp, err := s.service.PreviewGame(ctx.Context(), id, opponent, ctx.Query("result"))
	if err != nil {
		return err
	}
	return ctx.JSON(previewResponse{
		Player:   newRatingChangeResponse(id, player),
		Opponent: newRatingChangeResponse(opponent, opp),
	})
}

func (s *Server) handleListTournaments(ctx *fiber.Ctx) error {
	tournaments, err := s.service.ListTournaments(ctx.Context())
	if err != nil {
		return err
	}
	resp := make([]tournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		resp = append(resp, newTournamentResponse(t))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleCreateTournament(ctx *fiber.Ctx) error {
	var req createTournament
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	t, err := s.service.CreateTournament(ctx.Context(), req.convertToDomainTournament())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(newTournamentResponse(t))
}

func (s *Server) handleGetTournament(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	t, err := s.service.GetTournament(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newTournamentResponse(t))
}

func (s *Server) handleListCompetitors(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	competitors, err := s.service.ListCompetitors(ctx.Context(), id)
	if err != nil {
		return err
	}
	resp := make([]competitorResponse, 0, len(competitors))
	for _, c := range competitors {
		resp = append(resp, newCompetitorResponse(c))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleAddCompetitor(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	var req addCompetitor
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	playerID := req.PlayerID
	if playerID <= 0 {
		p, err := s.service.GetByName(ctx.Context(), req.Name)
		if err != nil {
			return err
		}
		playerID = p.ID
	}
	if err := s.service.AddCompetitor(ctx.Context(), id, playerID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleListRounds(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	rounds, err := s.service.ListRounds(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertRounds(rounds))
}

func (s *Server) handleGeneratePairings(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	round, err := ctx.ParamsInt("round")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid round number")
	}
	r, err := s.service.GeneratePairings(ctx.Context(), id, round)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(newRoundResponse(r))
}

func (s *Server) handleSchedule(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	rounds, err := s.service.Schedule(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertRounds(rounds))
}

func (s *Server) handleListGames(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	games, err := s.service.ListGames(ctx.Context(), id)
	if err != nil {
		return err
	}
	if round := ctx.QueryInt("round"); round > 0 {
		games = slices.DeleteFunc(games, func(g domain.Game) bool { return g.Round != round })
	}
	resp := make([]gameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, newGameResponse(g))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleRecordResult(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	gameID, err := ctx.ParamsInt("game")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid game id")
	}
	var req recordResult
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	g, err := s.service.RecordResult(ctx.Context(), id, gameID, req.Result)
	if err != nil {
		return err
	}
	return ctx.JSON(newGameResponse(g))
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	standings, err := s.service.Standings(ctx.Context(), id)
	if err != nil {
		return err
	}
	resp := make([]standingResponse, 0, len(standings))
	for _, st := range standings {
		resp = append(resp, newStandingResponse(st))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleFinalize(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return err
	}
	changes, err := s.service.FinalizeRatings(ctx.Context(), id)
	if err != nil {
		return err
	}
	resp := make([]ratingChangeResponse, 0, len(changes))
	for playerID, c := range changes {
		resp = append(resp, newRatingChangeResponse(playerID, c))
	}
	slices.SortFunc(resp, func(a, b ratingChangeResponse) int { return a.ID - b.ID })
	return ctx.JSON(resp)
}

func convertRounds(rounds []domain.Round) []roundResponse {
	resp := make([]roundResponse, 0, len(rounds))
	for _, r := range rounds {
		resp = append(resp, newRoundResponse(r))
	}
	return resp
}
