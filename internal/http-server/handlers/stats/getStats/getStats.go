package getStats

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]models.ViewStats, error)
}

// New answers with a bare JSON array, which is what the stats client decodes.
func New(log *slog.Logger, hits StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stats.getStats.New"

		log := log.With(slog.String("op", op))

		start, err := requiredTime(r, "start")
		if err != nil {
			apierr.BadRequest(w, r, err.Error())

			return
		}

		end, err := requiredTime(r, "end")
		if err != nil {
			apierr.BadRequest(w, r, err.Error())

			return
		}

		if start.After(end) {
			apierr.BadRequest(w, r, "start can't be after end")

			return
		}

		unique, err := params.Bool(r, "unique")
		if err != nil {
			apierr.BadRequest(w, r, err.Error())

			return
		}

		stats, err := hits.Stats(r.Context(), start, end, params.Strings(r, "uris"), unique != nil && *unique)
		if err != nil {
			log.Error("failed to get stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get stats"))

			return
		}

		render.JSON(w, r, stats)
	}
}

func requiredTime(r *http.Request, name string) (time.Time, error) {
	t, err := params.Time(r, name)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, params.ErrMissing)
	}

	return *t, nil
}
