// Package apierr turns service errors into HTTP responses.
package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"exploreWithMe/internal/lib/api/response"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/service"
)

// Status maps an error kind to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Render writes err as an error envelope. Known kinds expose their message;
// anything else is logged and answered with fallback.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	status := Status(err)

	msg := fallback
	var svcErr *service.Error
	if errors.As(err, &svcErr) && status != http.StatusInternalServerError {
		msg = svcErr.Msg
		log.Info("request rejected", slog.Int("status", status), sl.Err(err))
	} else {
		log.Error(fallback, sl.Err(err))
	}

	render.Status(r, status)
	render.JSON(w, r, response.Error(msg))
}

// BadRequest answers 400 with msg.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error(msg))
}
