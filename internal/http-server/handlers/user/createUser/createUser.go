package createUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/models"
)

type UserResponse struct {
	response.Response
	User models.UserDto `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, req models.NewUserRequest) (models.UserDto, error)
}

func New(log *slog.Logger, users UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.createUser.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.NewUserRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
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

		user, err := users.CreateUser(r.Context(), req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to create user")

			return
		}

		log.Info("user created", slog.Int64("id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
