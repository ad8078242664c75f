package getCompilations

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

type CompilationsResponse struct {
	response.Response
	Compilations []models.CompilationDto `json:"compilations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CompilationsGetter
type CompilationsGetter interface {
	GetCompilations(ctx context.Context, pinned *bool, from, size int) ([]models.CompilationDto, error)
}

func New(log *slog.Logger, compilations CompilationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.compilation.getCompilations.New"

		log := log.With(slog.String("op", op))

		pinned, err := params.Bool(r, "pinned")
		if err != nil {
			log.Error("invalid pinned flag", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		from, size, err := params.Page(r)
		if err != nil {
			log.Error("invalid paging", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		list, err := compilations.GetCompilations(r.Context(), pinned, from, size)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to get compilations")

			return
		}

		render.JSON(w, r, CompilationsResponse{
			Response:     response.OK(),
			Compilations: list,
		})
	}
}
