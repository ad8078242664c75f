package updateUserEvent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserEventUpdater
type UserEventUpdater interface {
	UpdateEventByUser(ctx context.Context, userID, eventID int64, req models.UpdateEventUserRequest) (models.EventFullDto, error)
}

func New(log *slog.Logger, events UserEventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateUserEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

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

		var req models.UpdateEventUserRequest

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

		event, err := events.UpdateEventByUser(r.Context(), userID, eventID, req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to update event")

			return
		}

		log.Info("event updated by initiator", slog.Int64("event_id", eventID), slog.String("state", string(event.State)))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
