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

	"exploreWithMe/internal/clients/stats"
	"exploreWithMe/internal/config"
	"exploreWithMe/internal/http-server/handlers/category/createCategory"
	"exploreWithMe/internal/http-server/handlers/category/deleteCategory"
	"exploreWithMe/internal/http-server/handlers/category/getCategories"
	"exploreWithMe/internal/http-server/handlers/category/getCategory"
	"exploreWithMe/internal/http-server/handlers/category/updateCategory"
	"exploreWithMe/internal/http-server/handlers/compilation/createCompilation"
	"exploreWithMe/internal/http-server/handlers/compilation/deleteCompilation"
	"exploreWithMe/internal/http-server/handlers/compilation/getCompilation"
	"exploreWithMe/internal/http-server/handlers/compilation/getCompilations"
	"exploreWithMe/internal/http-server/handlers/compilation/updateCompilation"
	"exploreWithMe/internal/http-server/handlers/event/createEvent"
	"exploreWithMe/internal/http-server/handlers/event/getEvent"
	"exploreWithMe/internal/http-server/handlers/event/getUserEvent"
	"exploreWithMe/internal/http-server/handlers/event/getUserEvents"
	"exploreWithMe/internal/http-server/handlers/event/searchAdminEvents"
	"exploreWithMe/internal/http-server/handlers/event/searchEvents"
	"exploreWithMe/internal/http-server/handlers/event/updateAdminEvent"
	"exploreWithMe/internal/http-server/handlers/event/updateUserEvent"
	"exploreWithMe/internal/http-server/handlers/rating/addRating"
	"exploreWithMe/internal/http-server/handlers/rating/deleteRating"
	"exploreWithMe/internal/http-server/handlers/rating/getEventRate"
	"exploreWithMe/internal/http-server/handlers/rating/updateRating"
	"exploreWithMe/internal/http-server/handlers/request/cancelRequest"
	"exploreWithMe/internal/http-server/handlers/request/createRequest"
	"exploreWithMe/internal/http-server/handlers/request/getEventRequests"
	"exploreWithMe/internal/http-server/handlers/request/getUserRequests"
	"exploreWithMe/internal/http-server/handlers/request/moderateRequests"
	"exploreWithMe/internal/http-server/handlers/user/createUser"
	"exploreWithMe/internal/http-server/handlers/user/deleteUser"
	"exploreWithMe/internal/http-server/handlers/user/getUsers"
	"exploreWithMe/internal/http-server/middleware/mwlogger"
	"exploreWithMe/internal/http-server/middleware/mwmetrics"
	"exploreWithMe/internal/lib/logger"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/service"
	"exploreWithMe/internal/storage/migrator"
	"exploreWithMe/internal/storage/postgres"
)

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)

	log.Info("starting explore with me", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	if err := migrator.Up(log, cfg.Database.URL(), cfg.MigrationsPath); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	statsClient := stats.New(log, cfg.Stats.URL, cfg.Stats.Timeout)

	users := service.NewUserService(log, storage)
	categories := service.NewCategoryService(log, storage)
	events := service.NewEventService(log, storage, statsClient, nil)
	requests := service.NewRequestService(log, storage, nil)
	compilations := service.NewCompilationService(log, storage, events)
	ratings := service.NewRatingService(log, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New("main-service"))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/admin", func(r chi.Router) {
		r.Post("/categories", createCategory.New(log, categories))
		r.Patch("/categories/{catId}", updateCategory.New(log, categories))
		r.Delete("/categories/{catId}", deleteCategory.New(log, categories))

		r.Get("/users", getUsers.New(log, users))
		r.Post("/users", createUser.New(log, users))
		r.Delete("/users/{userId}", deleteUser.New(log, users))

		r.Get("/events", searchAdminEvents.New(log, events))
		r.Patch("/events/{eventId}", updateAdminEvent.New(log, events))

		r.Post("/compilations", createCompilation.New(log, compilations))
		r.Patch("/compilations/{compId}", updateCompilation.New(log, compilations))
		r.Delete("/compilations/{compId}", deleteCompilation.New(log, compilations))
	})

	router.Route("/users/{userId}", func(r chi.Router) {
		r.Get("/events", getUserEvents.New(log, events))
		r.Post("/events", createEvent.New(log, events))
		r.Get("/events/{eventId}", getUserEvent.New(log, events))
		r.Patch("/events/{eventId}", updateUserEvent.New(log, events))
		r.Get("/events/{eventId}/requests", getEventRequests.New(log, requests))
		r.Patch("/events/{eventId}/requests", moderateRequests.New(log, requests))

		r.Get("/requests", getUserRequests.New(log, requests))
		r.Post("/requests", createRequest.New(log, requests))
		r.Patch("/requests/{requestId}/cancel", cancelRequest.New(log, requests))

		r.Post("/ratings", addRating.New(log, ratings))
		r.Patch("/ratings/{ratingId}", updateRating.New(log, ratings))
		r.Delete("/ratings/{ratingId}", deleteRating.New(log, ratings))
	})

	router.Get("/categories", getCategories.New(log, categories))
	router.Get("/categories/{catId}", getCategory.New(log, categories))
	router.Get("/events", searchEvents.New(log, events))
	router.Get("/events/{id}", getEvent.New(log, events))
	router.Get("/events/rate/{eventId}", getEventRate.New(log, ratings))
	router.Get("/compilations", getCompilations.New(log, compilations))
	router.Get("/compilations/{compId}", getCompilation.New(log, compilations))

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

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}
