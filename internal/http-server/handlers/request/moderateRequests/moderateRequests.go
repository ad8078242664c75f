package moderateRequests

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

type Response struct {
	response.Response
	models.RequestStatusUpdateResult
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestModerator
type RequestModerator interface {
	UpdateRequestsByUser(
		ctx context.Context,
		userID, eventID int64,
		update models.RequestStatusUpdate,
	) (models.RequestStatusUpdateResult, error)
}

func New(log *slog.Logger, requests RequestModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.moderateRequests.New"

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

		var req models.RequestStatusUpdate

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

		result, err := requests.UpdateRequestsByUser(r.Context(), userID, eventID, req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to update requests")

			return
		}

		log.Info("requests moderated",
			slog.Int64("event_id", eventID),
			slog.Int("confirmed", len(result.ConfirmedRequests)),
			slog.Int("rejected", len(result.RejectedRequests)),
		)

		render.JSON(w, r, Response{
			Response:                  response.OK(),
			RequestStatusUpdateResult: result,
		})
	}
}
