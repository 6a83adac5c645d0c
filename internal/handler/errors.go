package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell-blog/internal/repository"
)

// fail converts a repository error into the uniform envelope.  The mapping
// over the sentinel taxonomy is deterministic: not-found → 404 with the
// endpoint's own message, ownership mismatch → 401, duplicate email → 400,
// anything else → 500 with the detail logged server-side only.
func fail(c echo.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return respond(c, http.StatusNotFound, notFound, false, nil)
	case errors.Is(err, repository.ErrForbidden):
		return respond(c, http.StatusUnauthorized, "You do not own this blog.", false, nil)
	case errors.Is(err, repository.ErrEmailExists):
		return respond(c, http.StatusBadRequest, "Email is already taken", false, nil)
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return respond(c, http.StatusInternalServerError, "Internal server error", false, nil)
	}
}
