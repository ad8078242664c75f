package getUserEvents

import (
	"context"
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
	Events []models.EventFullDto `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserEventsGetter
type UserEventsGetter interface {
	GetUserEvents(ctx context.Context, userID int64, from, size int) ([]models.EventFullDto, error)
}

func New(log *slog.Logger, events UserEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getUserEvents.New"

		log := log.With(slog.String("op", op))

		userID, err := params.ID(r, "userId")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		from, size, err := params.Page(r)
		if err != nil {
			log.Error("invalid paging", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		list, err := events.GetUserEvents(r.Context(), userID, from, size)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get events")

			return
		}

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}
