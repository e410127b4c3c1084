// Package server is the sidecar's HTTP surface. Every handler is stateless: it
// normalizes the posted JSON, formats or generates text, and responds.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quirkhelper/sidecar/pkg/dashboard"
	"github.com/quirkhelper/sidecar/pkg/metrics"
	"github.com/quirkhelper/sidecar/pkg/suggest"
)

// Server answers summarize, suggest and dashboard requests from the browser extension.
type Server struct {
	config    Config
	generator *suggest.Generator
	sink      dashboard.Sink
	metrics   *metrics.Metrics
	logger    *zap.Logger
	server    *fiber.App
}

// New creates a new Server. A nil sink discards dashboard snapshots after logging them.
func New(config Config, generator *suggest.Generator, sink dashboard.Sink, logger *zap.Logger) (*Server, error) {
	if generator == nil {
		return nil, errors.New("suggestion generator is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = dashboard.NewLogSink(logger)
	}

	s := &Server{
		config:    config,
		generator: generator,
		sink:      sink,
		metrics:   metrics.New(),
		logger:    logger,
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(s.observe)
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: originMatcher(config.AllowedOrigins),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type",
		MaxAge:           600,
	}))

	app.Get("/health", s.handleHealth)
	app.Get("/favicon.ico", s.handleFavicon)
	app.Post("/summarize", s.handleSummarize)
	app.Post("/suggest", s.handleSuggest)
	app.Post("/dashboard", s.handleDashboard)
	app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))

	s.server = app
	return s, nil
}

// Run starts the server on the configured listening address.
func (s *Server) Run() error {
	s.logger.Info("starting sidecar server",
		zap.String("listen", s.config.ListenAddr),
		zap.Strings("allowed_origins", s.config.AllowedOrigins),
		zap.Bool("llm_enabled", s.generator.Available()),
	)

	return s.server.Listen(s.config.ListenAddr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.ShutdownWithContext(ctx)
}

// observe records metrics and a debug line for every request.
func (s *Server) observe(c *fiber.Ctx) error {
	startTime := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
	}

	// Label values outlive the request; fiber's strings point into a reused buffer.
	route := utils.CopyString(c.Route().Path)
	method := utils.CopyString(c.Method())
	s.metrics.ObserveRequest(route, method, status, time.Since(startTime))

	s.logger.Debug("request handled",
		zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		zap.String("method", method),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(startTime)),
	)
	return err
}

// handleError logs unexpected failures and defers to fiber's default response.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("request rejected", zap.String("path", c.Path()), zap.Error(err))
	}

	return fiber.DefaultErrorHandler(c, err)
}
