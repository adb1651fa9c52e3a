package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/voxnote/internal/logging"
)

// setupErrorHandling logs unhandled errors with a stack trace and answers
// with a plain 500. echo.HTTPErrors keep echo's default handling.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		logging.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			"error", err,
			"stack_trace", string(debug.Stack()),
		)

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(http.StatusInternalServerError)
			return
		}
		_ = c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
