package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/service"
)

type OrderStatusResponse struct {
	OrderID int64              `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	[]domain.Order
//	@Failure		502	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.ListOrders(r.Context())
	if err != nil {
		app.inventoryError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order by ID
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		int	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		502			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := idParam(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		app.orderError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// cancelOrderHandler godoc
//
//	@Summary		Cancel an order
//	@Description	The inventory service restores the deducted stock
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		int	true	"Order ID"
//	@Success		200			{object}	OrderStatusResponse
//	@Failure		404			{object}	map[string]string
//	@Failure		422			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{order_id}/cancel [patch]
func (app *application) cancelOrderHandler(w http.ResponseWriter, r *http.Request) {
	app.transitionOrder(w, r, app.orderService.CancelOrder)
}

// completeOrderHandler godoc
//
//	@Summary		Complete an order
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		int	true	"Order ID"
//	@Success		200			{object}	OrderStatusResponse
//	@Failure		404			{object}	map[string]string
//	@Failure		422			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{order_id}/complete [patch]
func (app *application) completeOrderHandler(w http.ResponseWriter, r *http.Request) {
	app.transitionOrder(w, r, app.orderService.CompleteOrder)
}

type orderTransition func(ctx context.Context, id int64, userID string) (domain.OrderStatus, error)

func (app *application) transitionOrder(w http.ResponseWriter, r *http.Request, transition orderTransition) {
	user := getUserFromContext(r)

	orderID, err := idParam(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	status, err := transition(r.Context(), orderID, user.UserID)
	if err != nil {
		app.orderError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, OrderStatusResponse{OrderID: orderID, Status: status}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) orderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrOrderNotFound) {
		app.notFoundError(w, r, err)
		return
	}

	app.inventoryError(w, r, err)
}
