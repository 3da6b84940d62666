package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/inventory"
	"github.com/sh1vam31/food-inventory-console/internal/order"
	"github.com/sh1vam31/food-inventory-console/internal/service"
)

var (
	ErrInvalidID = errors.New("invalid ID format")
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, err.Error())
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("conflict", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusConflict, err.Error())
}

func isGateError(err error) bool {
	_, ok := order.ReasonOf(err)
	return ok
}

func (app *application) gateClosedResponse(w http.ResponseWriter, r *http.Request, err error) {
	reason, _ := order.ReasonOf(err)
	app.logger.Infow("submission gate closed", "method", r.Method, "path", r.URL.Path, "reason", reason)

	writeJson(w, http.StatusConflict, map[string]string{
		"error":  err.Error(),
		"reason": string(reason),
	})
}

func (app *application) unprocessableResponse(w http.ResponseWriter, r *http.Request, reason string) {
	app.logger.Warnw("rejected by inventory service", "method", r.Method, "path", r.URL.Path, "reason", reason)

	writeJsonError(w, http.StatusUnprocessableEntity, reason)
}

func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("inventory service unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadGateway, "inventory service is unavailable")
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)

	writeJsonError(w, http.StatusForbidden, "forbidden")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter.String())

	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String())
}

// inventoryError maps a failed inventory call: refusals carry the service's
// reason, everything else means the service could not be reached.
func (app *application) inventoryError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *inventory.APIError
	if inventory.IsRejection(err) && errors.As(err, &apiErr) {
		app.unprocessableResponse(w, r, apiErr.Error())
		return
	}

	app.badGatewayResponse(w, r, err)
}

func (app *application) cartError(w http.ResponseWriter, r *http.Request, err error) {
	var rejected *order.RejectedError

	switch {
	case errors.Is(err, service.ErrCartNotFound), errors.Is(err, service.ErrMenuItemNotFound):
		app.notFoundError(w, r, err)
	case errors.Is(err, service.ErrCartLocked):
		app.conflictResponse(w, r, err)
	case isGateError(err):
		app.gateClosedResponse(w, r, err)
	case errors.As(err, &rejected):
		app.inventoryError(w, r, rejected.Err)
	default:
		app.inventoryError(w, r, err)
	}
}
