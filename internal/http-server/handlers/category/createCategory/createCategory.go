package createCategory

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

type CategoryResponse struct {
	response.Response
	Category models.CategoryDto `json:"category"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryCreator
type CategoryCreator interface {
	CreateCategory(ctx context.Context, req models.CategoryRequest) (models.CategoryDto, error)
}

func New(log *slog.Logger, categories CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.createCategory.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.CategoryRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			apierr.BadRequest(w, r, "failed to decode request")

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		category, err := categories.CreateCategory(r.Context(), req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to create category")

			return
		}

		log.Info("category created", slog.Int64("id", category.ID))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, category)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, category models.CategoryDto) {
	render.JSON(w, r, CategoryResponse{
		Response: response.OK(),
		Category: category,
	})
}
