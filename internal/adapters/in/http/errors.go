package http

import (
	"errors"
	"log/slog"
	"net/http"

	"hangerflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds reported in the body next to the HTTP status.
const (
	KindNotFound            = "NotFound"
	KindValidation          = "ValidationError"
	KindInvalidTransition   = "InvalidTransition"
	KindIncompleteSteps     = "IncompleteSteps"
	KindConcurrencyConflict = "ConcurrencyConflict"
	KindBadRequest          = "BadRequest"
	KindInternal            = "Internal"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code         int      `json:"code"`
	Kind         string   `json:"kind"`
	Message      string   `json:"message"`
	Retryable    bool     `json:"retryable,omitempty"`
	MissingSteps []string `json:"missingSteps,omitempty"`
}

// classify maps a use case error onto a status code and body. Required
// values are malformed requests (400); values that parse but break a domain
// rule are 422.
func classify(err error) Error {
	var (
		httpErr       *echo.HTTPError
		incompleteErr *errs.IncompleteStepsError
	)

	switch {
	case errors.As(err, &httpErr):
		kind := KindBadRequest
		if httpErr.Code >= http.StatusInternalServerError {
			kind = KindInternal
		} else if httpErr.Code == http.StatusNotFound {
			kind = KindNotFound
		}
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return Error{Code: httpErr.Code, Kind: kind, Message: msg}
	case errs.IsRetryable(err):
		return Error{Code: http.StatusConflict, Kind: KindConcurrencyConflict, Message: err.Error(), Retryable: true}
	case errors.As(err, &incompleteErr):
		return Error{
			Code:         http.StatusConflict,
			Kind:         KindIncompleteSteps,
			Message:      err.Error(),
			MissingSteps: incompleteErr.Missing,
		}
	case errors.Is(err, errs.ErrInvalidTransition):
		return Error{Code: http.StatusConflict, Kind: KindInvalidTransition, Message: err.Error()}
	case errs.IsNotFound(err):
		return Error{Code: http.StatusNotFound, Kind: KindNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired):
		return Error{Code: http.StatusBadRequest, Kind: KindValidation, Message: err.Error()}
	case errs.IsValidation(err):
		return Error{Code: http.StatusUnprocessableEntity, Kind: KindValidation, Message: err.Error()}
	default:
		return Error{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "internal error"}
	}
}

// ErrorHandler returns an echo.HTTPErrorHandler that writes classified errors
// as JSON. Unexpected errors are logged and hidden from the client.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := classify(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
