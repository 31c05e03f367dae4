package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sharemypics/internal/errors"
)

// respondError translates domain errors into HTTP responses. NotFound keeps
// its plain-text body naming the offending id; everything else is JSON.
func respondError(c echo.Context, err error) error {
	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		return c.String(http.StatusNotFound, nf.Error())
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, apperrors.ErrorResponse{Error: httpErr.Message, Code: httpErr.Code})
}
