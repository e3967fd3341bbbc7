package public

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/productscience/clubstaking/app"
	"github.com/productscience/clubstaking/internal/server/middleware"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// Server serves the committed ledger read-only over HTTP.
type Server struct {
	e      *echo.Echo
	ledger *app.App
	logger log.Logger

	// the multistore is not safe for concurrent readers
	mu sync.Mutex
}

func NewServer(ledger *app.App, logger log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.TransparentErrorHandler
	s := &Server{
		e:      e,
		ledger: ledger,
		logger: logger.With("module", "server"),
	}

	e.Use(middleware.LoggingMiddleware(s.logger))
	g := e.Group("/v1/")

	g.GET("params", s.getParams)
	g.GET("clubs/:club/ownership", s.getOwnership)
	g.GET("clubs/:club/previous-owner", s.getPreviousOwner)
	g.GET("clubs/:club/stakes", s.getClubStakes)
	g.GET("clubs/:club/bonds", s.getClubBonds)
	g.GET("stakes", s.getAllStakes)
	g.GET("bonds", s.getAllBonds)
	g.GET("ranking", s.getRanking)
	g.GET("reward-amount", s.getRewardAmount)
	g.GET("last-distribution", s.getLastDistribution)
	g.GET("escrow/:address", s.getEscrow)
	g.GET("balances/:address", s.getBalance)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// query runs fn against the last committed state and writes its result.
func (s *Server) query(c echo.Context, fn func(ctx sdk.Context, qs types.QueryServer) (any, error)) error {
	s.mu.Lock()
	resp, err := fn(s.ledger.QueryContext(time.Now().UTC()), s.ledger.QueryServer())
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) getParams(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.Params(ctx, &types.QueryParamsRequest{})
	})
}

func (s *Server) getOwnership(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.ClubOwnership(ctx, &types.QueryClubOwnershipRequest{ClubName: c.Param("club")})
	})
}

func (s *Server) getPreviousOwner(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.ClubPreviousOwner(ctx, &types.QueryClubPreviousOwnerRequest{ClubName: c.Param("club")})
	})
}

func (s *Server) getClubStakes(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.ClubStakes(ctx, &types.QueryClubStakesRequest{ClubName: c.Param("club")})
	})
}

func (s *Server) getClubBonds(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.ClubBonds(ctx, &types.QueryClubBondsRequest{ClubName: c.Param("club")})
	})
}

func (s *Server) getAllStakes(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.AllStakes(ctx, &types.QueryAllStakesRequest{})
	})
}

func (s *Server) getAllBonds(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.AllBonds(ctx, &types.QueryAllBondsRequest{})
	})
}

func (s *Server) getRanking(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.ClubRanking(ctx, &types.QueryClubRankingRequest{})
	})
}

func (s *Server) getRewardAmount(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.RewardAmount(ctx, &types.QueryRewardAmountRequest{})
	})
}

func (s *Server) getLastDistribution(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.LastDistribution(ctx, &types.QueryLastDistributionRequest{})
	})
}

func (s *Server) getEscrow(c echo.Context) error {
	return s.query(c, func(ctx sdk.Context, qs types.QueryServer) (any, error) {
		return qs.Escrow(ctx, &types.QueryEscrowRequest{Address: c.Param("address")})
	})
}

func (s *Server) getBalance(c echo.Context) error {
	addr, err := sdk.AccAddressFromBech32(c.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid address: "+err.Error())
	}
	return s.query(c, func(ctx sdk.Context, _ types.QueryServer) (any, error) {
		denom := c.QueryParam("denom")
		if denom == "" {
			params, err := s.ledger.ClubStakingKeeper.GetParams(ctx)
			if err != nil {
				return nil, err
			}
			denom = params.Denom
		}
		amount, err := s.ledger.Bank.GetBalance(ctx, addr, denom)
		if err != nil {
			return nil, err
		}
		return app.Balance{Address: addr.String(), Coins: sdk.NewCoins(sdk.NewCoin(denom, amount))}, nil
	})
}
