package updateCategory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/models"
)

type CategoryResponse struct {
	response.Response
	Category models.CategoryDto `json:"category"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryUpdater
type CategoryUpdater interface {
	UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (models.CategoryDto, error)
}

func New(log *slog.Logger, categories CategoryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.updateCategory.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		catID, err := params.ID(r, "catId")
		if err != nil {
			log.Error("invalid category id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		var req models.CategoryRequest

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

		category, err := categories.UpdateCategory(r.Context(), catID, req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to update category")

			return
		}

		log.Info("category updated", slog.Int64("id", catID))

		render.JSON(w, r, CategoryResponse{
			Response: response.OK(),
			Category: category,
		})
	}
}
