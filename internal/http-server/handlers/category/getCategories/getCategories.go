package getCategories

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

type CategoriesResponse struct {
	response.Response
	Categories []models.CategoryDto `json:"categories"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoriesGetter
type CategoriesGetter interface {
	GetCategories(ctx context.Context, from, size int) ([]models.CategoryDto, error)
}

func New(log *slog.Logger, categories CategoriesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.getCategories.New"

		log := log.With(slog.String("op", op))

		from, size, err := params.Page(r)
		if err != nil {
			log.Error("invalid paging", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		list, err := categories.GetCategories(r.Context(), from, size)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get categories")

			return
		}

		render.JSON(w, r, CategoriesResponse{
			Response:   response.OK(),
			Categories: list,
		})
	}
}
