package updateAdminEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminEventUpdater
type AdminEventUpdater interface {
	UpdateEventByAdmin(ctx context.Context, eventID int64, req models.UpdateEventAdminRequest) (models.EventFullDto, error)
}

func New(log *slog.Logger, events AdminEventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateAdminEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, err := params.ID(r, "eventId")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		var req models.UpdateEventAdminRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			apierr.BadRequest(w, r, "failed to decode request")

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event, err := events.UpdateEventByAdmin(r.Context(), eventID, req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to update event")

			return
		}

		log.Info("event updated by admin", slog.String("state", string(event.State)))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
