package webpath

const (
	Home    = "/"
	Metrics = "/metrics"

	Api                  = "/api"
	ApiPlayers           = Api + "/players"
	ApiGetPlayer         = ApiPlayers + "/:id"
	ApiPlayerImprovement = ApiGetPlayer + "/improvement"
	ApiAnalyses          = Api + "/analyses"
	ApiMatches           = Api + "/matches"
	ApiGetMatch          = ApiMatches + "/:id"
	ApiConfirmMatch      = ApiGetMatch + "/confirm"
	ApiRankings          = Api + "/rankings"
	ApiRecomputeRankings = ApiRankings + "/recompute"
)
