package getUsers

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

type UsersResponse struct {
	response.Response
	Users []models.UserDto `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersGetter
type UsersGetter interface {
	GetUsers(ctx context.Context, ids []int64, from, size int) ([]models.UserDto, error)
}

func New(log *slog.Logger, users UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getUsers.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ids, err := params.Int64s(r, "ids")
		if err != nil {
			log.Error("invalid ids", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		from, size, err := params.Page(r)
		if err != nil {
			log.Error("invalid paging", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		list, err := users.GetUsers(r.Context(), ids, from, size)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get users")

			return
		}

		render.JSON(w, r, UsersResponse{
			Response: response.OK(),
			Users:    list,
		})
	}
}
