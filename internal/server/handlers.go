package server

import (
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"runtime"

	"github.com/gin-gonic/gin"

	"tradecoach/internal/catalog"
	"tradecoach/internal/coaching"
	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/generator"
	"tradecoach/internal/logging"
	"tradecoach/internal/models"
)

// maxSimulationRuns bounds one simulation request.
const maxSimulationRuns = 10000

type randomRequest struct {
	Seed uint64 `json:"seed"`
}

type customRequest struct {
	generator.CustomRequest
	Seed uint64 `json:"seed"`
}

type assessRequest struct {
	TraderState models.TraderState        `json:"traderState"`
	Assessment  models.CoachingAssessment `json:"assessment"`
}

type simulateRequest struct {
	Runs    int    `json:"runs"`
	Workers int    `json:"workers"`
	Seed    uint64 `json:"seed"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleTraders(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Traders)
}

func (s *Server) handleTrader(c *gin.Context) {
	t, err := s.catalog.TraderByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Strategies)
}

func (s *Server) handleScenarios(c *gin.Context) {
	f := catalog.ScenarioFilter{
		MarketCondition: models.MarketCondition(c.Query("market")),
		TimeFrame:       models.TimeFrame(c.Query("timeframe")),
		AssetClass:      models.AssetClass(c.Query("asset")),
		Difficulty:      models.Difficulty(c.Query("difficulty")),
	}
	if err := validateFilter(f); err != nil {
		writeError(c, err)
		return
	}
	scenarios := s.catalog.FilterScenarios(f)
	if scenarios == nil {
		scenarios = []models.TradingScenario{}
	}
	c.JSON(http.StatusOK, scenarios)
}

func (s *Server) handleScenario(c *gin.Context) {
	sc, err := s.catalog.ScenarioByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (s *Server) handleRandom(c *gin.Context) {
	var req randomRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	gen, seed, err := s.newGenerator(req.Seed)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := gen.GenerateRandom(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("X-Scenario-Seed", strconv.FormatUint(seed, 10))
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCustom(c *gin.Context) {
	var req customRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.NewValidationError("body", nil, err.Error()))
		return
	}
	gen, seed, err := s.newGenerator(req.Seed)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := gen.GenerateCustom(c.Request.Context(), req.CustomRequest)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("X-Scenario-Seed", strconv.FormatUint(seed, 10))
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleAssess(c *gin.Context) {
	var req assessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.NewValidationError("body", nil, err.Error()))
		return
	}
	if !req.TraderState.CurrentEmotionalState.Primary.Valid() {
		writeError(c, apperrors.NewValidationError("traderState.currentEmotionalState.primary", req.TraderState.CurrentEmotionalState.Primary, "unknown emotion"))
		return
	}
	session, err := coaching.NewSession(req.TraderState, req.Assessment, s.clock())
	if err != nil {
		writeError(c, err)
		return
	}
	logging.LogAssessment(logging.FromContext(c.Request.Context()), session)
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleSimulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.NewValidationError("body", nil, err.Error()))
		return
	}
	if req.Runs < 1 || req.Runs > maxSimulationRuns {
		writeError(c, apperrors.NewValidationError("runs", req.Runs, "must be between 1 and 10000"))
		return
	}
	if req.Workers < 0 {
		writeError(c, apperrors.NewValidationError("workers", req.Workers, "must not be negative"))
		return
	}
	// One goroutine per CPU at most; more only adds scheduling overhead.
	workers := req.Workers
	if workers == 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	report, err := generator.Simulate(c.Request.Context(), s.opts, generator.SimulationRequest{
		Runs:    req.Runs,
		Workers: workers,
		Seed:    req.Seed,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// newGenerator builds a request-scoped generator. A zero seed is replaced by
// a random one so the response can report what was used.
func (s *Server) newGenerator(seed uint64) (*generator.Generator, uint64, error) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	opts := s.opts
	opts.Rand = generator.NewRand(seed)
	gen, err := generator.New(opts)
	return gen, seed, err
}

// bindOptionalJSON binds the body when one was sent.
func bindOptionalJSON(c *gin.Context, target interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, apperrors.NewValidationError("body", nil, err.Error()))
		return false
	}
	return true
}

func validateFilter(f catalog.ScenarioFilter) error {
	if f.MarketCondition != "" && !f.MarketCondition.Valid() {
		return apperrors.NewValidationError("market", f.MarketCondition, "unknown market condition")
	}
	if f.TimeFrame != "" && !f.TimeFrame.Valid() {
		return apperrors.NewValidationError("timeframe", f.TimeFrame, "unknown time frame")
	}
	if f.AssetClass != "" && !f.AssetClass.Valid() {
		return apperrors.NewValidationError("asset", f.AssetClass, "unknown asset class")
	}
	if f.Difficulty != "" && !f.Difficulty.Valid() {
		return apperrors.NewValidationError("difficulty", f.Difficulty, "unknown difficulty")
	}
	return nil
}

// writeError maps domain errors to HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := gin.H{"error": err.Error()}

	var vErr *apperrors.ValidationError
	var gErr *apperrors.GenerationError
	switch {
	case apperrors.As(err, &vErr):
		status = http.StatusBadRequest
		body["field"] = vErr.Field
	case apperrors.Is(err, apperrors.ErrTraderNotFound), apperrors.Is(err, apperrors.ErrScenarioNotFound):
		status = http.StatusNotFound
	case apperrors.As(err, &gErr):
		body["stage"] = gErr.Stage
	}
	c.JSON(status, body)
}
