// Package server exposes the dataset explorer and journey builder over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/solardome/strategy-explorer/internal/advisor"
	"github.com/solardome/strategy-explorer/internal/config"
	"github.com/solardome/strategy-explorer/internal/dataset"
	"github.com/solardome/strategy-explorer/internal/gap"
	"github.com/solardome/strategy-explorer/internal/maturity"
	"github.com/solardome/strategy-explorer/internal/profile"
	"github.com/solardome/strategy-explorer/internal/report"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

const defaultRecordLimit = 50

type Server struct {
	cfg    config.Server
	logger *zap.Logger
	router *gin.Engine

	mu      sync.RWMutex
	records []dataset.Record
	stats   dataset.Stats
}

func New(cfg config.Server, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, logger: logger}
	if err := s.reloadDataset(); err != nil {
		// The server is still useful without a dataset; journeys work
		// from posted profiles alone.
		logger.Warn("dataset unavailable at startup",
			zap.String("path", cfg.DatasetPath),
			zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.GET("/", s.handleIndex)
	api := router.Group("/api")
	{
		api.GET("/rubric", s.handleRubric)
		api.GET("/records", s.handleRecords)
		api.GET("/stats", s.handleStats)
		api.POST("/journey", s.handleJourney)
		api.POST("/journey/chart", s.handleJourneyChart)
	}
	s.router = router
	return s, nil
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, reloading the dataset on file changes.
func (s *Server) Run(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := s.watchDataset(watchCtx); err != nil {
		s.logger.Warn("dataset watch disabled", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) reloadDataset() error {
	records, err := dataset.Load(s.cfg.DatasetPath)
	if err != nil {
		return err
	}
	stats := dataset.Summarize(records)
	s.mu.Lock()
	s.records = records
	s.stats = stats
	s.mu.Unlock()
	s.logger.Info("dataset loaded",
		zap.String("path", s.cfg.DatasetPath),
		zap.Int("rows", stats.Rows))
	return nil
}

func (s *Server) snapshot() ([]dataset.Record, dataset.Stats) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.stats
}

func (s *Server) handleIndex(c *gin.Context) {
	_, stats := s.snapshot()
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(c.Writer, indexData{
		Stats: stats,
		Axes:  rubric.Axes(),
	}); err != nil {
		s.logger.Error("render index", zap.Error(err))
	}
}

func (s *Server) handleRubric(c *gin.Context) {
	levels := make([]string, 0, 5)
	for _, l := range rubric.Levels() {
		levels = append(levels, l.String())
	}
	c.JSON(http.StatusOK, gin.H{
		"axes":   rubric.Axes(),
		"themes": rubric.Themes(),
		"levels": levels,
	})
}

func (s *Server) handleRecords(c *gin.Context) {
	records, _ := s.snapshot()

	filter := dataset.Filter{
		OrgTypes:  c.QueryArray("org_type"),
		Countries: c.QueryArray("country"),
		Scopes:    c.QueryArray("scope"),
	}
	if v, err := intQuery(c, "year_from"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if v != nil {
		filter.YearFrom = *v
	}
	if v, err := intQuery(c, "year_to"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if v != nil {
		filter.YearTo = *v
	}
	limit := defaultRecordLimit
	if v, err := intQuery(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if v != nil {
		limit = *v
	}

	matched := dataset.Apply(records, filter)
	matched = dataset.Search(matched, c.Query("q"), limit)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(matched),
		"records": matched,
	})
}

func (s *Server) handleStats(c *gin.Context) {
	_, stats := s.snapshot()
	c.JSON(http.StatusOK, stats)
}

type journeyRequest struct {
	Current  map[string]int `json:"current"`
	Target   map[string]int `json:"target"`
	Maturity map[string]int `json:"maturity"`
	TopN     *int           `json:"top_n"`
}

func (s *Server) handleJourney(c *gin.Context) {
	journey, status, err := s.buildJourney(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, journey)
}

func (s *Server) handleJourneyChart(c *gin.Context) {
	journey, status, err := s.buildJourney(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "image/png")
	if err := report.RenderGapChart(c.Writer, journey.Gaps); err != nil {
		s.logger.Error("render gap chart", zap.Error(err))
	}
}

func (s *Server) buildJourney(c *gin.Context) (report.Journey, int, error) {
	var req journeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return report.Journey{}, http.StatusBadRequest, fmt.Errorf("parse request: %w", err)
	}

	current, err := axisProfile(req.Current)
	if err != nil {
		return report.Journey{}, http.StatusBadRequest, fmt.Errorf("current: %w", err)
	}
	target, err := axisProfile(req.Target)
	if err != nil {
		return report.Journey{}, http.StatusBadRequest, fmt.Errorf("target: %w", err)
	}
	maturityScores, err := themeProfile(req.Maturity)
	if err != nil {
		return report.Journey{}, http.StatusBadRequest, fmt.Errorf("maturity: %w", err)
	}

	agg, err := maturity.Aggregate(maturityScores)
	if err != nil {
		return report.Journey{}, http.StatusBadRequest, err
	}
	rows, err := gap.Analyze(current, target, agg.Level)
	if err != nil {
		return report.Journey{}, http.StatusBadRequest, err
	}
	topN := s.cfg.TopN
	if req.TopN != nil {
		topN = *req.TopN
	}
	actions := gap.SeedActions(rows, topN)

	hints := make([]report.AxisHint, 0, len(rubric.AxisNames()))
	for _, name := range rubric.AxisNames() {
		hints = append(hints, report.AxisHint{Axis: name, Hint: advisor.Hint(name, agg.Level)})
	}

	_, stats := s.snapshot()
	var statsPtr *dataset.Stats
	if stats.Rows > 0 {
		statsPtr = &stats
	}
	journey := report.NewJourney(time.Now(), report.JourneyInputs{
		MaturityScores: maturityScores,
		Maturity:       agg,
		Gaps:           rows,
		Actions:        actions,
		Hints:          hints,
		Stats:          statsPtr,
	})
	return journey, http.StatusOK, nil
}

// axisProfile overlays posted values on the neutral defaults. Values are
// clamped to 0-100; unknown axis names are rejected.
func axisProfile(values map[string]int) (profile.Scores, error) {
	scores := profile.DefaultScores()
	for name, v := range values {
		if _, ok := rubric.AxisByName(name); !ok {
			return nil, fmt.Errorf("%w: unknown axis %q", profile.ErrInvalidInput, name)
		}
		scores[name] = profile.Clamp(v, 0, 100)
	}
	return scores, nil
}

func themeProfile(values map[string]int) (profile.MaturityScores, error) {
	scores := profile.DefaultMaturity()
	known := map[string]bool{}
	for _, name := range rubric.ThemeNames() {
		known[name] = true
	}
	for name, v := range values {
		if !known[name] {
			return nil, fmt.Errorf("%w: unknown theme %q", profile.ErrInvalidInput, name)
		}
		scores[name] = profile.Clamp(v, 1, 5)
	}
	return scores, nil
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

func intQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}
