package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

type AddCartItemRequest struct {
	MenuItemID int64 `json:"menu_item_id" validate:"required,gt=0"`
}

type SetCartItemQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// openCartHandler godoc
//
//	@Summary		Open a cart
//	@Description	Starts a new order composition session owned by the caller
//	@Tags			carts
//	@Produce		json
//	@Success		201	{object}	service.CartView
//	@Failure		401	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts [post]
func (app *application) openCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	view, err := app.cartService.Open(r.Context(), user.UserID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartHandler godoc
//
//	@Summary		Get a cart
//	@Description	Lines, total, feasibility state and whether the order can be placed
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart ID"
//	@Success		200		{object}	service.CartView
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts/{cart_id} [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	view, err := app.cartService.View(r.Context(), chi.URLParam(r, "cart_id"), user.UserID)
	if err != nil {
		app.cartError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// closeCartHandler godoc
//
//	@Summary		Close a cart
//	@Description	Discards the cart without placing an order
//	@Tags			carts
//	@Param			cart_id	path	string	true	"Cart ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts/{cart_id} [delete]
func (app *application) closeCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.cartService.Close(chi.URLParam(r, "cart_id"), user.UserID); err != nil {
		app.cartError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// addCartItemHandler godoc
//
//	@Summary		Add a menu item
//	@Description	Adds one unit of a menu item, creating the line if needed
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cart_id	path		string				true	"Cart ID"
//	@Param			request	body		AddCartItemRequest	true	"Menu item"
//	@Success		200		{object}	service.CartView
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		502		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts/{cart_id}/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.cartService.AddItem(r.Context(), chi.URLParam(r, "cart_id"), user.UserID, req.MenuItemID)
	if err != nil {
		app.cartError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setCartItemQuantityHandler godoc
//
//	@Summary		Set a line quantity
//	@Description	Overwrites the quantity of a line; zero or less removes it
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cart_id			path		string						true	"Cart ID"
//	@Param			menu_item_id	path		int							true	"Menu item ID"
//	@Param			request			body		SetCartItemQuantityRequest	true	"Quantity"
//	@Success		200				{object}	service.CartView
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Failure		409				{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts/{cart_id}/items/{menu_item_id} [put]
func (app *application) setCartItemQuantityHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	menuItemID, err := idParam(r, "menu_item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req SetCartItemQuantityRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.cartService.SetQuantity(r.Context(), chi.URLParam(r, "cart_id"), user.UserID, menuItemID, *req.Quantity)
	if err != nil {
		app.cartError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeCartItemHandler godoc
//
//	@Summary		Remove a line
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id			path		string	true	"Cart ID"
//	@Param			menu_item_id	path		int		true	"Menu item ID"
//	@Success		200				{object}	service.CartView
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Failure		409				{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts/{cart_id}/items/{menu_item_id} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	menuItemID, err := idParam(r, "menu_item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.cartService.RemoveItem(r.Context(), chi.URLParam(r, "cart_id"), user.UserID, menuItemID)
	if err != nil {
		app.cartError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// recheckCartHandler godoc
//
//	@Summary		Re-check feasibility
//	@Description	Issues a new feasibility check for the current cart
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart ID"
//	@Success		202		{object}	service.CartView
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts/{cart_id}/recheck [post]
func (app *application) recheckCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	view, err := app.cartService.Recheck(r.Context(), chi.URLParam(r, "cart_id"), user.UserID)
	if err != nil {
		app.cartError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusAccepted, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// submitCartHandler godoc
//
//	@Summary		Place the order
//	@Description	Places the order from the last verified check. 409 when the cart cannot be submitted yet, 422 when the inventory service refuses the order.
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart ID"
//	@Success		201		{object}	domain.Order
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Failure		502		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/carts/{cart_id}/submit [post]
func (app *application) submitCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	placed, err := app.cartService.Submit(r.Context(), chi.URLParam(r, "cart_id"), user.UserID)
	if err != nil {
		app.cartError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, placed); err != nil {
		app.internalServerError(w, r, err)
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
