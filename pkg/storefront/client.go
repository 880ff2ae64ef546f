package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the remote foods/orders API. All persistent state lives
// behind it; this side only holds session-local view state.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) ListFoods(ctx context.Context) ([]Food, error) {
	var foods []Food
	if err := c.do(ctx, http.MethodGet, "/foods", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// SaveFood is the single entry point for both create and update. A food
// with an ID goes to PUT /foods/{id}, a fresh one to POST /foods.
func (c *Client) SaveFood(ctx context.Context, food Food) (Food, error) {
	method := http.MethodPost
	path := "/foods"
	if food.ID != "" {
		method = http.MethodPut
		path = "/foods/" + food.ID
	}

	var saved Food
	if err := c.do(ctx, method, path, food, &saved); err != nil {
		return Food{}, err
	}
	return saved, nil
}

func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/foods/"+id, nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, order Order) (Order, error) {
	var created Order
	if err := c.do(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return Order{}, err
	}
	return created, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
