package getCategory

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

type CategoryResponse struct {
	response.Response
	Category models.CategoryDto `json:"category"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryGetter
type CategoryGetter interface {
	GetCategory(ctx context.Context, id int64) (models.CategoryDto, error)
}

func New(log *slog.Logger, categories CategoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.getCategory.New"

		log := log.With(slog.String("op", op))

		catID, err := params.ID(r, "catId")
		if err != nil {
			log.Error("invalid category id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		category, err := categories.GetCategory(r.Context(), catID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get category")

			return
		}

		render.JSON(w, r, CategoryResponse{
			Response: response.OK(),
			Category: category,
		})
	}
}
