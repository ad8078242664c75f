package getEventRequests

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

type RequestsResponse struct {
	response.Response
	Requests []models.ParticipationRequestDto `json:"requests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRequestsGetter
type EventRequestsGetter interface {
	GetEventRequests(ctx context.Context, userID, eventID int64) ([]models.ParticipationRequestDto, error)
}

func New(log *slog.Logger, requests EventRequestsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.getEventRequests.New"

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

		list, err := requests.GetEventRequests(r.Context(), userID, eventID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get event requests")

			return
		}

		render.JSON(w, r, RequestsResponse{
			Response: response.OK(),
			Requests: list,
		})
	}
}
