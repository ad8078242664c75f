package getUserRequests

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRequestsGetter
type UserRequestsGetter interface {
	GetUserRequests(ctx context.Context, userID int64) ([]models.ParticipationRequestDto, error)
}

func New(log *slog.Logger, requests UserRequestsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.getUserRequests.New"

		log := log.With(slog.String("op", op))

		userID, err := params.ID(r, "userId")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		list, err := requests.GetUserRequests(r.Context(), userID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get requests")

			return
		}

		render.JSON(w, r, RequestsResponse{
			Response: response.OK(),
			Requests: list,
		})
	}
}
