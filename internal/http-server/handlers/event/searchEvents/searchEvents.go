package searchEvents

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/models"
)

type EventsResponse struct {
	response.Response
	Events []models.EventShortDto `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSearcher
type EventSearcher interface {
	FindEventsByPublic(ctx context.Context, f models.PublicEventFilter, hit models.HitInfo) ([]models.EventShortDto, error)
}

func New(log *slog.Logger, events EventSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.searchEvents.New"

		log := log.With(slog.String("op", op))

		filter, err := parseFilter(r)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		list, err := events.FindEventsByPublic(r.Context(), filter, params.Hit(r))
		if err != nil {
			apierr.Render(w, r, log, err, "failed to search events")

			return
		}

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}

func parseFilter(r *http.Request) (models.PublicEventFilter, error) {
	var (
		f   models.PublicEventFilter
		err error
	)

	f.Text = r.URL.Query().Get("text")

	if f.Categories, err = params.Int64s(r, "categories"); err != nil {
		return f, err
	}
	if f.Paid, err = params.Bool(r, "paid"); err != nil {
		return f, err
	}
	if f.RangeStart, err = params.Time(r, "rangeStart"); err != nil {
		return f, err
	}
	if f.RangeEnd, err = params.Time(r, "rangeEnd"); err != nil {
		return f, err
	}

	onlyAvailable, err := params.Bool(r, "onlyAvailable")
	if err != nil {
		return f, err
	}
	f.OnlyAvailable = onlyAvailable != nil && *onlyAvailable

	switch sort := models.SortOrder(r.URL.Query().Get("sort")); sort {
	case "", models.SortByEventDate, models.SortByViews:
		f.Sort = sort
	default:
		return f, fmt.Errorf("unknown sort %q", sort)
	}

	f.From, f.Size, err = params.Page(r)

	return f, err
}
