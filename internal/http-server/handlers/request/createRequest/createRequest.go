package createRequest

import (
	"context"
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

type RequestResponse struct {
	response.Response
	Request models.ParticipationRequestDto `json:"request"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestCreator
type RequestCreator interface {
	AddRequest(ctx context.Context, userID, eventID int64) (models.ParticipationRequestDto, error)
}

func New(log *slog.Logger, requests RequestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.createRequest.New"

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

		eventID, err := params.QueryID(r, "eventId")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		log = log.With(slog.Int64("user_id", userID), slog.Int64("event_id", eventID))

		request, err := requests.AddRequest(r.Context(), userID, eventID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to create request")

			return
		}

		log.Info("participation requested", slog.Int64("request_id", request.ID), slog.String("status", string(request.Status)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RequestResponse{
			Response: response.OK(),
			Request:  request,
		})
	}
}
