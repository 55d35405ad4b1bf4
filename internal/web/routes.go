package web

const (
	home = "/"

	api            = "/api"
	apiPlayers     = api + "/players"
	apiPlayer      = apiPlayers + "/:id"
	apiPreview     = apiPlayer + "/preview"
	apiTournaments = api + "/tournaments"
	apiTournament  = apiTournaments + "/:id"
	apiCompetitors = apiTournament + "/competitors"
	apiRounds      = apiTournament + "/rounds"
	apiRound       = apiRounds + "/:round"
	apiSchedule    = apiTournament + "/schedule"
	apiGames       = apiTournament + "/games"
	apiGameResult  = apiGames + "/:game/result"
	apiStandings   = apiTournament + "/standings"
	apiFinalize    = apiTournament + "/finalize"

	metricsPath = "/metrics"
)
