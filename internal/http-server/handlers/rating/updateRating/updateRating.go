package updateRating

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/models"
)

type RatingResponse struct {
	response.Response
	Rating models.RatingDto `json:"rating"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RatingUpdater
type RatingUpdater interface {
	UpdateRating(ctx context.Context, userID, ratingID int64, req models.UpdateRatingRequest) (models.RatingDto, error)
}

func New(log *slog.Logger, ratings RatingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rating.updateRating.New"

		log := log.With(slog.String("op", op))

		userID, err := params.ID(r, "userId")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		ratingID, err := params.ID(r, "ratingId")
		if err != nil {
			log.Error("invalid rating id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		var req models.UpdateRatingRequest

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

		rating, err := ratings.UpdateRating(r.Context(), userID, ratingID, req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to update rating")

			return
		}

		render.JSON(w, r, RatingResponse{
			Response: response.OK(),
			Rating:   rating,
		})
	}
}
