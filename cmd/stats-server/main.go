package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"exploreWithMe/internal/config"
	"exploreWithMe/internal/http-server/handlers/stats/getStats"
	"exploreWithMe/internal/http-server/handlers/stats/saveHit"
	"exploreWithMe/internal/http-server/middleware/mwlogger"
	"exploreWithMe/internal/http-server/middleware/mwmetrics"
	"exploreWithMe/internal/lib/logger"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/storage/hits"
	"exploreWithMe/internal/storage/migrator"
)

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)

	log.Info("starting stats server", slog.String("env", cfg.Env))

	if err := migrator.Up(log, cfg.Database.URL(), cfg.MigrationsPath); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	storage, err := hits.New(context.Background(), cfg.Database.URL())
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New("stats-server"))
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.Handler())
	router.Post("/hit", saveHit.New(log, storage))
	router.Get("/stats", getStats.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("stats server stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	storage.Close()

	log.Info("stats server stopped")
}
