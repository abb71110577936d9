package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/deppfellow/go-cats/internal/errs"
	"github.com/deppfellow/go-cats/internal/middleware"
	"github.com/deppfellow/go-cats/internal/server"
)

// Handler is the base handler type that holds shared application dependencies.
//
// Concrete handlers embed it to reach config and logger through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc is a typed endpoint: it receives the decoded body Req and
// returns a response Res or an error.
type HandlerFunc[Req any, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint without response body.
type HandlerFuncNoContent[Req any] func(c echo.Context, req Req) error

// RawHandlerFunc is an endpoint that works on the raw request only; nothing is decoded.
type RawHandlerFunc[Res any] func(c echo.Context) (Res, error)

// Header is a fixed response header written on success.
type Header struct {
	Key   string
	Value string
}

// ResponseHandler defines how a successful result is written and traced.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on response type and/or result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// NoContentResponseHandler writes an empty body and its fixed headers.
type NoContentResponseHandler struct {
	status  int
	headers []Header
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	for _, header := range h.headers {
		c.Response().Header().Set(header.Key, header.Value)
	}

	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn != nil {
		for _, header := range h.headers {
			txn.AddAttribute("response.header."+header.Key, header.Value)
		}
	}
}

// bind decodes the request body into a fresh Req.
//
// There is no validation step: any body that decodes is accepted.
// A body in a content type the binder does not read counts as empty,
// so Req keeps its zero value. Undecodable JSON is a 400.
func bind[Req any](c echo.Context) (Req, error) {
	var req Req

	if err := c.Bind(&req); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusUnsupportedMediaType {
				var empty Req

				return empty, nil
			}

			return req, errs.New(echoErr.Code, fmt.Sprint(echoErr.Message))
		}

		return req, errs.NewBadRequestError(err.Error())
	}

	return req, nil
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes body decoding, structured logging with the request-scoped
// logger, New Relic attributes, timing, and response writing.
// With decode == false the body is never read.
func handleRequest[Req any](
	c echo.Context,
	decode bool,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	var req Req
	bindDuration := time.Duration(0)

	if decode {
		bindStart := time.Now()

		var err error
		req, err = bind[Req](c)
		bindDuration = time.Since(bindStart)

		if err != nil {
			logger.Warn().
				Err(err).
				Dur("bind_duration", bindDuration).
				Msg("request body could not be decoded")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("bind.status", "failed")
			}

			return err
		}
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("bind_duration", bindDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler returning a JSON body.
//
//	router.POST("/x", handler.Handle(h.Create, http.StatusCreated))
func Handle[Req any, Res any](handler HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, true, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleRaw wraps a handler that only needs the raw request; the body is not decoded.
func HandleRaw[Res any](handler RawHandlerFunc[Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, false, func(c echo.Context, _ struct{}) (interface{}, error) {
			return handler(c)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent wraps a typed handler for endpoints without response body,
// writing status and headers on success.
func HandleNoContent[Req any](handler HandlerFuncNoContent[Req], status int, headers ...Header) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, true, func(c echo.Context, req Req) (interface{}, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status, headers: headers})
	}
}
