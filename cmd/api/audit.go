package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sh1vam31/food-inventory-console/internal/repo"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// listSubmissionsHandler godoc
//
//	@Summary		List submission audits
//	@Description	Every order placement attempt, newest first
//	@Tags			audit
//	@Produce		json
//	@Param			user_id	query		string	false	"Filter by user"
//	@Param			cart_id	query		string	false	"Filter by cart"
//	@Param			limit	query		int		false	"Max entries (default 50, max 200)"
//	@Success		200		{object}	[]domain.SubmissionAudit
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/audit/submissions [get]
func (app *application) listSubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := defaultAuditLimit
	if v := q.Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > maxAuditLimit {
			app.badRequestResponse(w, r, errors.New("limit must be between 1 and 200"))
			return
		}
		limit = parsed
	}

	filter := repo.SubmissionAuditFilter{
		UserID: q.Get("user_id"),
		CartID: q.Get("cart_id"),
	}

	audits, err := app.orderService.ListSubmissions(r.Context(), filter, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
