package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid inventory base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid inventory base url %q", cfg.BaseURL)
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

type orderRequest struct {
	Items []domain.CompositionLine `json:"items"`
}

type checkResponse struct {
	CanFulfill         bool              `json:"can_fulfill"`
	MissingIngredients []domain.Shortage `json:"missing_ingredients"`
	TotalPrice         float64           `json:"total_price"`
}

type statusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (c *Client) ListMenuItems(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error) {
	query := url.Values{}
	query.Set("available_only", strconv.FormatBool(availableOnly))

	var items []domain.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/food-items", query, nil, &items); err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return items, nil
}

func (c *Client) CheckFeasibility(ctx context.Context, lines []domain.CompositionLine) (*domain.Verdict, error) {
	var resp checkResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders/check-inventory", nil, orderRequest{Items: lines}, &resp); err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}

	return &domain.Verdict{
		CanFulfill:          resp.CanFulfill,
		Shortages:           resp.MissingIngredients,
		EvaluatedTotalPrice: resp.TotalPrice,
	}, nil
}

func (c *Client) CreateOrder(ctx context.Context, lines []domain.CompositionLine) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, orderRequest{Items: lines}, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil, &order); err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) (domain.OrderStatus, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/cancel", id), nil, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to cancel order: %w", err)
	}

	return domain.OrderStatus(resp.Status), nil
}

func (c *Client) CompleteOrder(ctx context.Context, id int64) (domain.OrderStatus, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/complete", id), nil, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to complete order: %w", err)
	}

	return domain.OrderStatus(resp.Status), nil
}

func (c *Client) Ping(ctx context.Context) error {
	var resp statusResponse
	return c.do(ctx, http.MethodGet, "/health", nil, nil, &resp)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
