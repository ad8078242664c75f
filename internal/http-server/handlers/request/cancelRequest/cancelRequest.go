package cancelRequest

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestCanceler
type RequestCanceler interface {
	CancelRequest(ctx context.Context, userID, requestID int64) (models.ParticipationRequestDto, error)
}

func New(log *slog.Logger, requests RequestCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.cancelRequest.New"

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

		requestID, err := params.ID(r, "requestId")
		if err != nil {
			log.Error("invalid request id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		request, err := requests.CancelRequest(r.Context(), userID, requestID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to cancel request")

			return
		}

		log.Info("participation request canceled", slog.Int64("participation_id", requestID))

		render.JSON(w, r, RequestResponse{
			Response: response.OK(),
			Request:  request,
		})
	}
}
