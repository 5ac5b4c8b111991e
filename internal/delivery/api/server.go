// Package api serves the REST API over echo.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"apikit/config"
	"apikit/internal/delivery"
	apimiddleware "apikit/internal/delivery/api/middleware"
	"apikit/internal/delivery/api/router"
	"apikit/internal/delivery/api/validator"
	"apikit/internal/delivery/middleware"
	"apikit/internal/domain/lifecycle"
	"apikit/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const defaultBodyLimit = "10M"

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the echo instance with the shared middleware chain, error
// handler and validator, without any routes.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig(cfg.HTTP.CORS)))

	// 5. Request body size limit
	bodyLimit := cfg.HTTP.MaxRequestBodySize
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}
	echoServer.Use(echomiddleware.BodyLimit(bodyLimit))

	errorMiddleware := apimiddleware.NewErrorMiddleware(logger, cfg)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New(cfg)

	return echoServer
}

func corsConfig(cfg config.CORSConfig) echomiddleware.CORSConfig {
	out := echomiddleware.DefaultCORSConfig
	if len(cfg.Origins) > 0 {
		out.AllowOrigins = cfg.Origins
	}
	out.AllowCredentials = cfg.Credentials
	out.ExposeHeaders = []string{echo.HeaderXRequestID, "Retry-After"}

	return out
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
