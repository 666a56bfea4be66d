// Package web is the JSON API surface over the rating and ranking services.
package web

import (
	"errors"
	"strconv"
	"time"

	"github.com/courtside/skillserver/internal/config"
	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/ranking"
	"github.com/courtside/skillserver/internal/service"
	"github.com/courtside/skillserver/internal/web/webpath"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Server struct {
	rating  *service.RatingService
	ranking *ranking.Service
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(rs *service.RatingService, rk *ranking.Service, cfg config.Server, l *logrus.Logger) *Server {
	server := Server{
		rating:  rs,
		ranking: rk,
		cfg:     cfg,
		log:     l.WithFields(logrus.Fields{"from": "web"}),
	}

	app := fiber.New(fiber.Config{
		AppName:      "skillserver",
		ErrorHandler: server.handleError,
	})

	app.Get(webpath.Metrics, adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiGetPlayer, server.handleGetPlayer)
	app.Get(webpath.ApiPlayerImprovement, server.handleImprovement)
	app.Post(webpath.ApiAnalyses, server.handleRecordAnalysis)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)
	app.Get(webpath.ApiGetMatch, server.handleGetMatch)
	app.Post(webpath.ApiConfirmMatch, server.handleConfirmMatch)
	app.Get(webpath.ApiRankings, server.handleGetRankings)
	app.Post(webpath.ApiRecomputeRankings, server.handleRecomputeRankings)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleError maps service sentinels onto HTTP statuses. Anything unmapped is
// logged and reported as a 500 without leaking the internal error text.
func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	case errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrMatchNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotParticipant):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyConfirmed):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrScoreOutOfRange),
		errors.Is(err, service.ErrSamePlayer),
		errors.Is(err, ranking.ErrUnknownScope):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.log.WithError(err).Error("request failed")
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func badRequest(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func pathID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, badRequest(err)
	}
	return id, nil
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	player, err := s.rating.CreatePlayer(ctx.Context(), req.Name, req.Country, req.Region, req.City)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(newPlayerData(player))
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	player, err := s.rating.GetPlayer(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newPlayerData(player))
}

func (s *Server) handleRecordAnalysis(ctx *fiber.Ctx) error {
	var req recordAnalysis
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	profile, err := s.rating.RecordTechniqueResult(ctx.Context(), req.PlayerID, domain.Sport(req.Sport), req.Technique, req.Score, req.analyzedAt())
	if err != nil {
		return err
	}
	return ctx.JSON(newProfileData(profile))
}

func (s *Server) handleCreateMatch(ctx *fiber.Ctx) error {
	var req createMatch
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	match, err := s.rating.CreateMatch(ctx.Context(), domain.Sport(req.Sport), req.PlayerA, req.PlayerB, req.ChallengeID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(newMatchData(match))
}

func (s *Server) handleGetMatch(ctx *fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	match, err := s.rating.GetMatch(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newMatchData(match))
}

func (s *Server) handleConfirmMatch(ctx *fiber.Ctx) error {
	matchID, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req confirmMatch
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	result, _ := domain.ParseMatchResult(req.Result)
	match, err := s.rating.ConfirmMatch(ctx.Context(), matchID, req.PlayerID, result, req.Score)
	if err != nil {
		return err
	}
	return ctx.JSON(newMatchData(match))
}

func (s *Server) handleGetRankings(ctx *fiber.Ctx) error {
	sport := domain.Sport(ctx.Query("sport"))
	if sport == "" {
		return badRequest(ErrMissingSport)
	}
	scope := ctx.Query("scope", ranking.ScopeGlobal)
	if country := ctx.Query("country"); country != "" {
		scope = ranking.CountryScope(country)
	}
	period := ctx.Query("period", ranking.CurrentPeriod(time.Now()))
	snapshots, err := s.ranking.Rankings(ctx.Context(), sport, scope, period)
	if err != nil {
		return err
	}
	return ctx.JSON(newRankingData(sport, scope, period, snapshots))
}

func (s *Server) handleRecomputeRankings(ctx *fiber.Ctx) error {
	var req recomputeRankings
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	sport := domain.Sport(req.Sport)
	period := req.Period
	if period == "" {
		period = ranking.CurrentPeriod(time.Now())
	}

	var ranked int
	var err error
	if req.Scope == "" {
		ranked, err = s.ranking.RecomputeAll(ctx.Context(), sport, period)
	} else {
		ranked, err = s.ranking.Recompute(ctx.Context(), sport, req.Scope, period)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"sport": sport, "period": period, "ranked": ranked})
}

func (s *Server) handleImprovement(ctx *fiber.Ctx) error {
	playerID, err := pathID(ctx)
	if err != nil {
		return err
	}
	sport := domain.Sport(ctx.Query("sport"))
	if sport == "" {
		return badRequest(ErrMissingSport)
	}
	summary, err := s.rating.ImprovementPath(ctx.Context(), playerID, sport)
	if err != nil {
		return err
	}
	return ctx.JSON(newImprovementData(summary))
}
