package saveHit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/metrics"
	"exploreWithMe/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HitSaver
type HitSaver interface {
	SaveHit(ctx context.Context, hit models.EndpointHit) (int64, error)
}

func New(log *slog.Logger, hits HitSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stats.saveHit.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var hit models.EndpointHit

		if err := render.DecodeJSON(r.Body, &hit); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			apierr.BadRequest(w, r, "failed to decode request")

			return
		}

		if err := validator.New().Struct(hit); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if hit.Timestamp.IsZero() {
			apierr.BadRequest(w, r, "field Timestamp is a required field")

			return
		}

		id, err := hits.SaveHit(r.Context(), hit)
		if err != nil {
			log.Error("failed to save hit", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save hit"))

			return
		}

		metrics.HitsRecorded.Inc()
		log.Debug("hit saved", slog.Int64("id", id), slog.String("app", hit.App), slog.String("uri", hit.URI))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.OK())
	}
}
