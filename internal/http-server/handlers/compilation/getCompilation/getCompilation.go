package getCompilation

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

type CompilationResponse struct {
	response.Response
	Compilation models.CompilationDto `json:"compilation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CompilationGetter
type CompilationGetter interface {
	GetCompilation(ctx context.Context, id int64) (models.CompilationDto, error)
}

func New(log *slog.Logger, compilations CompilationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.compilation.getCompilation.New"

		log := log.With(slog.String("op", op))

		compID, err := params.ID(r, "compId")
		if err != nil {
			log.Error("invalid compilation id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		comp, err := compilations.GetCompilation(r.Context(), compID)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get compilation")

			return
		}

		render.JSON(w, r, CompilationResponse{
			Response:    response.OK(),
			Compilation: comp,
		})
	}
}
