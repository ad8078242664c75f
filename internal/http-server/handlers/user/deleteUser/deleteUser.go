package deleteUser

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserDeleter
type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

func New(log *slog.Logger, users UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.deleteUser.New"

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

		if err = users.DeleteUser(r.Context(), userID); err != nil {
			apierr.Render(w, r, log, err, "failed to delete user")

			return
		}

		log.Info("user deleted", slog.Int64("id", userID))

		render.NoContent(w, r)
	}
}
