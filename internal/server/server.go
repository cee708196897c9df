package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"merchdash/internal/analytics"
	"merchdash/internal/config"
	"merchdash/internal/dataset"
	"merchdash/internal/models"
)

type Server struct {
	router    *gin.Engine
	store     *dataset.Store
	dashboard config.DashboardConfig
	log       zerolog.Logger
}

// NewServer creates a new server instance
func NewServer(store *dataset.Store, dashboard config.DashboardConfig, log zerolog.Logger) *Server {
	router := gin.Default()

	server := &Server{
		router:    router,
		store:     store,
		dashboard: dashboard,
		log:       log,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/meta", s.meta)
		api.GET("/summary", s.summary)

		charts := api.Group("/charts")
		{
			charts.GET("/sales-trend", chartHandler(s, analytics.SalesTrend))
			charts.GET("/top-categories", chartHandler(s, analytics.TopCategories))
			charts.GET("/device-continent", chartHandler(s, analytics.DeviceByContinent))
			charts.GET("/price-brand", chartHandler(s, analytics.PriceByBrand))
			charts.GET("/funnel", s.funnel)
		}
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.store.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "dataset unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "merchdash",
		"version": "0.1.0",
	})
}

// meta reports the filter options the sidebar controls offer: distinct
// continents and devices present, the full day range, and the configured
// default continent selection.
func (s *Server) meta(c *gin.Context) {
	rows, ok := s.loadRows(c)
	if !ok {
		return
	}

	response := gin.H{
		"continents":         analytics.Continents(rows),
		"devices":            analytics.Devices(rows),
		"default_continents": s.dashboard.DefaultContinents,
		"date_min":           nil,
		"date_max":           nil,
	}
	if start, end, found := analytics.DayRange(rows); found {
		response["date_min"] = start
		response["date_max"] = end
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) summary(c *gin.Context) {
	filtered, ok := s.filteredRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.Summarize(filtered))
}

// chartHandler wraps one aggregate function as a handler. Empty filter
// results are valid and return an empty row array, never an error.
func chartHandler[T any](s *Server, aggregate func([]dataset.Row) []T) gin.HandlerFunc {
	return func(c *gin.Context) {
		filtered, ok := s.filteredRows(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows": aggregate(filtered)})
	}
}

func (s *Server) funnel(c *gin.Context) {
	filtered, ok := s.filteredRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": analytics.Funnel(filtered, s.dashboard.FunnelStages)})
}

func (s *Server) loadRows(c *gin.Context) ([]dataset.Row, bool) {
	rows, err := s.store.Rows()
	if err != nil {
		s.log.Error().Err(err).Msg("dataset load failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset unavailable"})
		return nil, false
	}
	return rows, true
}

func (s *Server) filteredRows(c *gin.Context) ([]dataset.Row, bool) {
	rows, ok := s.loadRows(c)
	if !ok {
		return nil, false
	}
	filter, err := s.filterFromQuery(c, rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return analytics.Apply(rows, filter), true
}

// filterFromQuery binds the filter controls from query parameters, falling
// back to the defaults for any control left untouched: the configured
// continents, all devices present, the full day range. A start without an
// end means a single-day selection.
func (s *Server) filterFromQuery(c *gin.Context, rows []dataset.Row) (analytics.Filter, error) {
	filter := analytics.DefaultFilter(rows, s.dashboard.DefaultContinents)

	if continents := c.QueryArray("continent"); len(continents) > 0 {
		filter.Continents = continents
	}
	if devices := c.QueryArray("device"); len(devices) > 0 {
		filter.Devices = devices
	}

	startParam := c.Query("start")
	endParam := c.Query("end")
	if startParam != "" {
		start, err := models.ParseDay(startParam)
		if err != nil {
			return analytics.Filter{}, err
		}
		filter.Start = start
		filter.End = start
	}
	if endParam != "" {
		end, err := models.ParseDay(endParam)
		if err != nil {
			return analytics.Filter{}, err
		}
		filter.End = end
	}
	return filter, nil
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
