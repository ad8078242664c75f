package searchAdminEvents

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/models"
)

type EventsResponse struct {
	response.Response
	Events []models.EventFullDto `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminEventSearcher
type AdminEventSearcher interface {
	FindEventsByAdmin(ctx context.Context, f models.AdminEventFilter) ([]models.EventFullDto, error)
}

func New(log *slog.Logger, events AdminEventSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.searchAdminEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		filter, err := parseFilter(r)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		list, err := events.FindEventsByAdmin(r.Context(), filter)
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

func parseFilter(r *http.Request) (models.AdminEventFilter, error) {
	var (
		f   models.AdminEventFilter
		err error
	)

	if f.Users, err = params.Int64s(r, "users"); err != nil {
		return f, err
	}
	// categoriesId is the documented name; categories matches the public search.
	for _, name := range []string{"categoriesId", "categories"} {
		ids, err := params.Int64s(r, name)
		if err != nil {
			return f, err
		}
		f.Categories = append(f.Categories, ids...)
	}

	for _, s := range params.Strings(r, "states") {
		state := models.EventState(s)
		switch state {
		case models.EventStatePending, models.EventStatePublished, models.EventStateCanceled:
			f.States = append(f.States, state)
		default:
			return f, fmt.Errorf("unknown state %q", s)
		}
	}

	if f.RangeStart, err = params.Time(r, "rangeStart"); err != nil {
		return f, err
	}
	if f.RangeEnd, err = params.Time(r, "rangeEnd"); err != nil {
		return f, err
	}

	f.From, f.Size, err = params.Page(r)

	return f, err
}
