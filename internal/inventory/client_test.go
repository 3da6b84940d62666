package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	return client
}

func TestNew_RejectsInvalidURL(t *testing.T) {
	_, err := New(Config{BaseURL: "localhost"})
	assert.Error(t, err)
}

func TestListMenuItems_SendsAvailableOnly(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/food-items", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("available_only"))

		_, _ = w.Write([]byte(`[{"id":1,"name":"Pizza Margherita","price":12.99,"is_available":true,
			"created_at":"2024-01-15T10:30:00","ingredients":[{"id":3,"raw_material_id":7,
			"quantity_required_per_unit":0.3,"raw_material_name":"Flour","raw_material_unit":"kg"}]}]`))
	})

	items, err := client.ListMenuItems(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza Margherita", items[0].Name)
	assert.Equal(t, 12.99, items[0].Price)
	require.Len(t, items[0].Ingredients, 1)
	assert.Equal(t, "Flour", items[0].Ingredients[0].RawMaterialName)
	assert.Equal(t, 0.3, items[0].Ingredients[0].QuantityRequiredPerUnit)
}

func TestCheckFeasibility_MapsShortages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/check-inventory", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string][]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []map[string]any{{"food_item_id": float64(1), "quantity": float64(50)}}, body["items"])

		_, _ = w.Write([]byte(`{"can_fulfill":false,"total_price":649.5,"missing_ingredients":[
			{"raw_material_id":7,"raw_material_name":"Flour","required":15,"available":10,"unit":"kg","shortage":5},
			{"error":"Food item 9 is not available"}]}`))
	})

	verdict, err := client.CheckFeasibility(context.Background(), []domain.CompositionLine{{MenuItemID: 1, Quantity: 50}})
	require.NoError(t, err)
	assert.False(t, verdict.CanFulfill)
	assert.Equal(t, 649.5, verdict.EvaluatedTotalPrice)
	require.Len(t, verdict.Shortages, 2)
	assert.Equal(t, domain.Shortage{
		RawMaterialID:   7,
		RawMaterialName: "Flour",
		Required:        15,
		Available:       10,
		Shortage:        5,
		Unit:            "kg",
	}, verdict.Shortages[0])
	assert.Equal(t, "Food item 9 is not available", verdict.Shortages[1].Error)
}

func TestCreateOrder_ReturnsAuthoritativeOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"total_price":25.98,"status":"PLACED","created_at":"2024-01-15T10:30:00",
			"order_items":[{"id":1,"food_item_id":1,"quantity":2,"unit_price":12.99,"subtotal":25.98,"food_item_name":"Pizza Margherita"}]}`))
	})

	order, err := client.CreateOrder(context.Background(), []domain.CompositionLine{{MenuItemID: 1, Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pizza Margherita", order.Items[0].MenuItemName)
}

func TestCreateOrder_RejectionCarriesDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Insufficient inventory: Flour"}`))
	})

	_, err := client.CreateOrder(context.Background(), []domain.CompositionLine{{MenuItemID: 1, Quantity: 2}})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Insufficient inventory: Flour", err.Error())
	assert.True(t, IsRejection(err))
}

func TestAPIError_Details(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"structured detail", http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"}]}`, `[{"msg":"field required"}]`},
		{"plain text", http.StatusBadGateway, "upstream down", "upstream down"},
		{"empty body", http.StatusInternalServerError, "", "inventory service responded 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListOrders(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Error())
			assert.Equal(t, tt.status < 500, IsRejection(err))
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		switch r.URL.Path {
		case "/api/orders/5/cancel":
			_, _ = w.Write([]byte(`{"message":"Order cancelled","status":"CANCELLED"}`))
		case "/api/orders/5/complete":
			_, _ = w.Write([]byte(`{"message":"Order completed","status":"COMPLETED"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	status, err := client.CancelOrder(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, status)

	status, err = client.CompleteOrder(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, status)
}

func TestGetOrder_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Order not found"}`))
	})

	_, err := client.GetOrder(context.Background(), 9)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
}

func TestTimeoutIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.CheckFeasibility(context.Background(), []domain.CompositionLine{{MenuItemID: 1, Quantity: 1}})
	require.Error(t, err)
	assert.False(t, IsRejection(err))
}
