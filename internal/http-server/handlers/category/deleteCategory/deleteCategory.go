package deleteCategory

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryDeleter
type CategoryDeleter interface {
	DeleteCategory(ctx context.Context, id int64) error
}

func New(log *slog.Logger, categories CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.deleteCategory.New"

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

		if err = categories.DeleteCategory(r.Context(), catID); err != nil {
			apierr.Render(w, r, log, err, "failed to delete category")

			return
		}

		log.Info("category deleted", slog.Int64("id", catID))

		render.NoContent(w, r)
	}
}
