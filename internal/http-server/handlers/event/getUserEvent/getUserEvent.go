package getUserEvent

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

type EventResponse struct {
	response.Response
	Event models.EventFullDto `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserEventGetter
type UserEventGetter interface {
	GetUserEvent(ctx context.Context, userID, eventID int64) (models.EventFullDto, error)
}

func New(log *slog.Logger, events UserEventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getUserEvent.New"

		log := log.With(slog.String("op", op))

		userID, err := params.ID(r, "userId")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		eventID, err := params.ID(r, "eventId")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		event, err := events.GetUserEvent(r.Context(), userID, eventID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get event")

			return
		}

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
