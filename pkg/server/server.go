package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/tenancy-atlas/pkg/handlers/inventory"
	"github.com/de-tools/tenancy-atlas/pkg/services/identity"

	atlasmiddleware "github.com/de-tools/tenancy-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Explorer  identity.Explorer
	Collector handlers.Collector
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the API router without the listening server.
func ConfigureRouter(logger zerolog.Logger, deps Dependencies) *chi.Mux {
	invHandler := handlers.NewHandler(deps.Explorer, deps.Collector)

	router := chi.NewRouter()

	router.Use(atlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/regions", invHandler.ListRegions)
		r.Get("/compartments", invHandler.ListCompartments)
		r.Get("/regions/{region}/inventory", invHandler.GetRegionInventory)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config.Dependencies)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
