package getEventRate

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

type RateResponse struct {
	response.Response
	Rate models.EventRateDto `json:"rate"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRateGetter
type EventRateGetter interface {
	GetEventRating(ctx context.Context, eventID int64) (models.EventRateDto, error)
}

func New(log *slog.Logger, ratings EventRateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rating.getEventRate.New"

		log := log.With(slog.String("op", op))

		eventID, err := params.ID(r, "eventId")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		rate, err := ratings.GetEventRating(r.Context(), eventID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get event rating")

			return
		}

		render.JSON(w, r, RateResponse{
			Response: response.OK(),
			Rate:     rate,
		})
	}
}
