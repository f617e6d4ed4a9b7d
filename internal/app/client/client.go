// Package client - HTTP клиент для API сервера estoque.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"estoque/internal/domain/product"
)

// APIError - ответ сервера со статусом >= 400.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return fmt.Sprintf("ошибка сервера: %s", e.Detail)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Product is a product as the server returns it, with values formatted for
// the server's locale.
type Product struct {
	product.Product
	Display struct {
		Price          string `json:"price"`
		ExpirationDate string `json:"expirationDate"`
	} `json:"display"`
}

// Input - поля формы продукта. Маски допускаются, сервер их снимает.
type Input struct {
	Name           string `json:"name"`
	Price          string `json:"price"`
	Quantity       string `json:"quantity"`
	ExpirationDate string `json:"expirationDate"`
	Description    string `json:"description"`
}

type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

func New(baseURL string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 2,
			},
		},
		log:       log.With("component", "http_client"),
		baseURL:   baseURL,
		userAgent: "Estoque-Client/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HealthCheck проверяет доступность сервера и его хранилища
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

func (c *Client) Register(ctx context.Context, email, password, confirm string) error {
	req := map[string]string{
		"email":           email,
		"password":        password,
		"confirmPassword": confirm,
	}
	return c.do(ctx, http.MethodPost, "/user/register", req, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	req := map[string]string{
		"email":    email,
		"password": password,
	}
	return c.do(ctx, http.MethodPost, "/user/login", req, nil)
}

// Current returns the email of the logged-in user and whether there is one.
func (c *Client) Current(ctx context.Context) (string, bool, error) {
	var resp struct {
		LoggedIn bool   `json:"loggedIn"`
		Email    string `json:"email"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/current", nil, &resp); err != nil {
		return "", false, err
	}
	return resp.Email, resp.LoggedIn, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var resp struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodGet, productPath(id), nil, &p)
	return p, err
}

func (c *Client) AddProduct(ctx context.Context, in Input) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPost, "/api/products", in, &p)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in Input) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPut, productPath(id), in, &p)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, productPath(id), nil, nil)
}

func productPath(id int64) string {
	return "/api/products/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	c.log.Debug("Получен ответ", "status", resp.StatusCode, "request_id", resp.Header.Get("X-Request-ID"))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var errResp struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &errResp) == nil {
			apiErr.Detail = errResp.Detail
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}
