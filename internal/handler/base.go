package handler

import (
	"time"

	"github.com/opendirectory/providerdir/internal/middleware"
	"github.com/opendirectory/providerdir/internal/server"
	"github.com/opendirectory/providerdir/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger and the
// rest of the app container.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc represents a typed endpoint function that receives a bound
// and validated request payload and returns a response or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the shared execution pipeline for all handlers. It
// centralizes request binding + validation, structured logging, New Relic
// attributes and error reporting, timing, and JSON response writing.
//
// newReq builds a fresh payload per request; binding into a shared payload
// instance would race across concurrent requests.
func handleRequest[Req validation.Validatable, Res any](
	c echo.Context,
	newReq func() Req,
	handler HandlerFunc[Req, Res],
	status int,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", c.Request().Method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	req := newReq()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().Err(err).Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
		}

		return err
	}

	result, err := handler(c, req)
	if err != nil {
		logger.Error().
			Err(err).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed handler with binding, validation, error handling,
// logging and tracing, and returns an echo.HandlerFunc for registration.
func Handle[Req validation.Validatable, Res any](
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq, handler, status)
	}
}

// EmptyRequest is the payload for endpoints that take no input fields.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }
