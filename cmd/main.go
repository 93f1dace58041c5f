package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"postboard/internal/config"
	"postboard/internal/handlers"
	"postboard/internal/logger"
	"postboard/internal/repository"
	"postboard/internal/repository/db"
	"postboard/internal/server"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

// @title                       Postboard API
// @version                     1.0
// @description                 Users, sessions and short posts with a live feed.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml + POSTBOARD_* env
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// open DB
	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.TokenConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.Expire,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		CookieName:     cfg.JWT.CookieName,
		CookieTTL:      cfg.JWT.Expire,
		SecureCookie:   cfg.IsProduction(),
		RequestLogging: !cfg.IsProduction(),
		FeedInterval:   cfg.Feed.Interval,
		FeedLimit:      cfg.Feed.Limit,
	})

	// start HTTP server
	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	})
	serveErr := runHTTPServer(srv, cfg, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, cfg, serveErr, log)
}

// openDB initializes the SQLite database and checks it is reachable.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	log.Infow("sqlite ready", "path", cfg.DB.Path)
	return conn, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine. The returned
// channel receives the error that stopped it, if any.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errc := make(chan error, 1)
	go func() {
		log.Infow("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.Run(cfg.Port, handler.InitRoutes()); err != nil {
			errc <- err
		}
	}()
	return errc
}

// waitForShutdown blocks until a termination signal or a server failure,
// then drains in-flight requests.
func waitForShutdown(srv *server.Server, cfg *config.Config, serveErr <-chan error, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case err := <-serveErr:
		log.Errorw("server stopped unexpectedly", "err", err)
	}

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
