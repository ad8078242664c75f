package updateCompilation

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

type CompilationResponse struct {
	response.Response
	Compilation models.CompilationDto `json:"compilation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CompilationUpdater
type CompilationUpdater interface {
	UpdateCompilation(ctx context.Context, id int64, req models.UpdateCompilationRequest) (models.CompilationDto, error)
}

func New(log *slog.Logger, compilations CompilationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.compilation.updateCompilation.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		compID, err := params.ID(r, "compId")
		if err != nil {
			log.Error("invalid compilation id", sl.Err(err))
			apierr.BadRequest(w, r, err.Error())

			return
		}

		var req models.UpdateCompilationRequest

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

		comp, err := compilations.UpdateCompilation(r.Context(), compID, req)
		if err != nil {
			apierr.Render(w, r, log, err, "failed to update compilation")

			return
		}

		render.JSON(w, r, CompilationResponse{
			Response:    response.OK(),
			Compilation: comp,
		})
	}
}
