package createEvent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	AddEvent(ctx context.Context, userID int64, req models.NewEventRequest) (models.EventFullDto, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

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

		var req models.NewEventRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			apierr.BadRequest(w, r, "failed to decode request")

			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event, err := events.AddEvent(r.Context(), userID, req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to add event")

			return
		}

		log.Info("event added", slog.Int64("id", event.ID))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.EventFullDto) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
