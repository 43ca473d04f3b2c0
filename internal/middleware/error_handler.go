package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"myRecoMarket/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
}

// ErrorHandler renders errors that escaped the handlers (unknown routes,
// wrong methods, panics caught by Recover) with the same {error} body the
// handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled error", "path", c.Path(), err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorBody{Error: message})
	}
	if err != nil {
		logger.Error("Failed to write error response", err)
	}
}
