package deleteCompilation

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"exploreWithMe/internal/lib/api/apierr"
	"exploreWithMe/internal/lib/api/params"
	"exploreWithMe/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CompilationDeleter
type CompilationDeleter interface {
	DeleteCompilation(ctx context.Context, id int64) error
}

func New(log *slog.Logger, compilations CompilationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.compilation.deleteCompilation.New"

		log := log.With(slog.String("op", op))

		compID, err := params.ID(r, "compId")
		if err != nil {
			log.Error("invalid compilation id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		if err = compilations.DeleteCompilation(r.Context(), compID); err != nil {
			apierr.Render(w, r, log, err, "failed to delete compilation")

			return
		}

		log.Info("compilation deleted", slog.Int64("id", compID))

		render.NoContent(w, r)
	}
}
