package deleteRating

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RatingDeleter
type RatingDeleter interface {
	DeleteRating(ctx context.Context, userID, ratingID int64) error
}

func New(log *slog.Logger, ratings RatingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rating.deleteRating.New"

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

		if err = ratings.DeleteRating(r.Context(), userID, ratingID); err != nil {
			apierr.Render(w, r, log, err, "failed to delete rating")

			return
		}

		log.Info("rating deleted", slog.Int64("rating_id", ratingID))

		render.NoContent(w, r)
	}
}
