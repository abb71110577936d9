package cmd

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deppfellow/go-cats/internal/config"
	"github.com/deppfellow/go-cats/internal/handler"
	"github.com/deppfellow/go-cats/internal/logger"
	"github.com/deppfellow/go-cats/internal/middleware"
	"github.com/deppfellow/go-cats/internal/repository"
	"github.com/deppfellow/go-cats/internal/router"
	"github.com/deppfellow/go-cats/internal/server"
	"github.com/deppfellow/go-cats/internal/service"
)

// shutdownTimeout bounds how long in-flight requests may take after a stop signal.
const shutdownTimeout = 30 * time.Second

func newServeCmd(osSignal <-chan os.Signal) *cobra.Command {
	return &cobra.Command{
		Use:                   "serve",
		Short:                 "Start the HTTP server",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return errors.Wrap(err, "could not load config")
			}

			return serve(cmd.Context(), cfg, osSignal)
		},
	}
}

// serve builds the application graph bottom-up and blocks until the server
// stops on its own or osSignal fires.
func serve(ctx context.Context, cfg *config.Config, osSignal <-chan os.Signal) error {
	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return errors.Wrap(err, "could not start New Relic")
	}

	log := logger.New(cfg.Observability, os.Stdout, loggerService)

	srv := server.New(cfg, &log, loggerService)

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers, middlewares))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}

		loggerService.Shutdown()

		return err
	case sig := <-osSignal:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "could not shut down gracefully")
	}

	return <-serverErr
}
