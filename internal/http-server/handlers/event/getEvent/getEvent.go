package getEvent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetPublishedEvent(ctx context.Context, eventID int64, hit models.HitInfo) (models.EventFullDto, error)
}

func New(log *slog.Logger, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := params.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		event, err := events.GetPublishedEvent(r.Context(), eventID, params.Hit(r))
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get event info")

			return
		}

		log.Info("event info retrieved", slog.Int64("views", event.Views))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
