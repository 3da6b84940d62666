package main

import (
	"errors"
	"net/http"
	"strconv"
)

// listCatalogHandler godoc
//
//	@Summary		List menu items
//	@Description	Lists the inventory service's menu items with their recipes
//	@Tags			catalog
//	@Produce		json
//	@Param			available_only	query		bool	false	"Only items marked available"
//	@Success		200				{object}	[]domain.MenuItem
//	@Failure		400				{object}	map[string]string
//	@Failure		502				{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/catalog [get]
func (app *application) listCatalogHandler(w http.ResponseWriter, r *http.Request) {
	availableOnly := false
	if v := r.URL.Query().Get("available_only"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("available_only must be a boolean"))
			return
		}
		availableOnly = parsed
	}

	items, err := app.cartService.Catalog(r.Context(), availableOnly)
	if err != nil {
		app.inventoryError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}
