package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque/internal/app"
	"estoque/internal/config"
	"estoque/internal/domain/product"
	"estoque/internal/infrastructure/storage"
	"estoque/internal/infrastructure/storage/memory"
	"estoque/internal/utils/logger"
)

type testServer struct {
	t     *testing.T
	srv   *httptest.Server
	store *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Env:        config.EnvProd,
		Locale:     "en",
		Storage:    config.Storage{Driver: storage.DriverMemory},
		Validation: config.Validation{StrictDates: true},
	}
	store := memory.New()
	clock := func() time.Time { return time.UnixMilli(1000) }

	a, err := app.New(context.Background(), cfg, logger.Discard(),
		app.WithStore(store), app.WithProductOptions(product.WithClock(clock)))
	require.NoError(t, err)

	srv := httptest.NewServer(New(a))
	t.Cleanup(func() {
		srv.Close()
		_ = a.Close()
	})
	return &testServer{t: t, srv: srv, store: store}
}

func (s *testServer) do(method, path string, body any) (int, map[string]any) {
	s.t.Helper()

	var r *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(data)
	} else {
		r = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.srv.URL+path, r)
	require.NoError(s.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestAPI_Flow(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body := s.do(http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No user logged in! Please log in.", body["detail"])

	status, _ = s.do(http.MethodPost, "/user/login", map[string]string{"email": "a@b.com", "password": "pw1"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(http.MethodPost, "/user/register", map[string]string{
		"email": "a@b.com", "password": "pw1", "confirmPassword": "pw1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = s.do(http.MethodPost, "/user/register", map[string]string{
		"email": "a@b.com", "password": "pw1", "confirmPassword": "pw1",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, body = s.do(http.MethodPost, "/user/login", map[string]string{"email": "a@b.com", "password": "pw1"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "a@b.com", body["email"])

	status, body = s.do(http.MethodGet, "/user/current", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["loggedIn"])

	milk := map[string]string{
		"name":           "Milk",
		"price":          "350",
		"quantity":       "10",
		"expirationDate": "01/01/2030",
		"description":    "whole",
	}
	status, body = s.do(http.MethodPost, "/api/products", milk)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(1000), body["id"])

	status, body = s.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, status)
	products, ok := body["products"].([]any)
	require.True(t, ok)
	require.Len(t, products, 1)
	first := products[0].(map[string]any)
	assert.Equal(t, "Milk", first["name"])
	assert.Equal(t, "$3.50", first["display"].(map[string]any)["price"])
	assert.Equal(t, "01/01/2030", first["display"].(map[string]any)["expirationDate"])

	bad := map[string]string{"name": "Milk", "price": "350", "quantity": "10", "expirationDate": "1/1/2030"}
	status, _ = s.do(http.MethodPost, "/api/products", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	milk["quantity"] = "5"
	status, body = s.do(http.MethodPut, "/api/products/1000", milk)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "5", body["quantity"])

	status, _ = s.do(http.MethodPut, "/api/products/999", milk)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodDelete, "/api/products/1000", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(http.MethodGet, "/api/products/1000", nil)
	assert.Equal(t, http.StatusNotFound, status)

	raw, ok, err := s.store.Get(context.Background(), "products_a@b.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestAPI_StorageFailure(t *testing.T) {
	s := newTestServer(t)
	s.store.FailWith(fmt.Errorf("disk full"))

	status, _ := s.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	status, body := s.do(http.MethodPost, "/user/register", map[string]string{
		"email": "a@b.com", "password": "pw1", "confirmPassword": "pw1",
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Could not access storage!", body["detail"])
}

func TestAPI_EditKeepsLegacyDate(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, s.store.Set(ctx, "users", `{"a@b.com":"pw1"}`))
	require.NoError(t, s.store.Set(ctx, "currentUser", "a@b.com"))
	require.NoError(t, s.store.Set(ctx, "products_a@b.com",
		`[{"id":1,"name":"Milk","price":"350","quantity":"2","expirationDate":"12312025","description":"Dairy"}]`))

	status, body := s.do(http.MethodPut, "/api/products/1", map[string]string{
		"name":           "Oat milk",
		"price":          "350",
		"quantity":       "2",
		"expirationDate": "12312025",
		"description":    "Dairy",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Oat milk", body["name"])
	assert.Equal(t, "12312025", body["expirationDate"])

	raw, _, err := s.store.Get(ctx, "products_a@b.com")
	require.NoError(t, err)
	assert.Contains(t, raw, `"name":"Oat milk"`)
	assert.Contains(t, raw, `"expirationDate":"12312025"`)
}

func TestNew_SchemaNamesDoNotCollide(t *testing.T) {
	cfg := &config.Config{
		Env:     config.EnvProd,
		Locale:  "pt",
		Storage: config.Storage{Driver: storage.DriverMemory},
	}
	a, err := app.New(context.Background(), cfg, logger.Discard(), app.WithStore(memory.New()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NotPanics(t, func() { New(a) })

	srv := httptest.NewServer(New(a))
	t.Cleanup(srv.Close)
	resp, err := srv.Client().Get(srv.URL + "/openapi.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	var spec struct {
		Paths      map[string]any `json:"paths"`
		Components struct {
			Schemas map[string]any `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&spec))
	for _, path := range []string{"/api/v1/health", "/user/register", "/user/login", "/user/current", "/api/products", "/api/products/{id}"} {
		assert.Contains(t, spec.Paths, path)
	}
	for _, name := range []string{"StorageStatus", "UserResponse", "ProductDeleteResponse", "ProductView"} {
		assert.Contains(t, spec.Components.Schemas, name)
	}
}
