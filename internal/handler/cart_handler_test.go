package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/cart"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/kv"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

// handlerPricer resolves product IDs against a fixed price table.
type handlerPricer map[string]model.Product

func (p handlerPricer) GetByID(id string) (model.Product, bool) {
	product, ok := p[id]
	return product, ok
}

func testCartHandler(t *testing.T) *CartHandler {
	t.Helper()

	logger := zerolog.Nop()
	state, err := kv.NewFileStore(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { state.Close() })

	pricer := handlerPricer{
		"1": {ID: "1", Price: 100.00},
		"2": {ID: "2", Price: 49.99},
	}

	return NewCartHandler(cart.NewManager(pricer, state, logger), logger)
}

func decodeCart(t *testing.T, body []byte) model.Cart {
	t.Helper()
	var c model.Cart
	require.NoError(t, json.Unmarshal(body, &c))
	return c
}

func TestCartHandler_RequiresAuth(t *testing.T) {
	h := testCartHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_AddAndGet(t *testing.T) {
	h := testCartHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId":"1","quantity":2}`))
	req = asUser(req, "user-1", false)
	rec := httptest.NewRecorder()

	h.AddItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeCart(t, rec.Body.Bytes())
	assert.Equal(t, 200.0, snapshot.Total)
	assert.Equal(t, 2, snapshot.ItemCount)

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req = asUser(req, "user-1", false)
	rec = httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	snapshot = decodeCart(t, rec.Body.Bytes())
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "1", snapshot.Items[0].ProductID)
}

func TestCartHandler_CartsAreSeparatePerUser(t *testing.T) {
	h := testCartHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId":"1","quantity":1}`))
	req = asUser(req, "user-1", false)
	rec := httptest.NewRecorder()
	h.AddItem(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req = asUser(req, "user-2", false)
	rec = httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeCart(t, rec.Body.Bytes())
	assert.Empty(t, snapshot.Items)
}

func TestCartHandler_UpdateItem(t *testing.T) {
	h := testCartHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId":"2","quantity":1}`))
	req = asUser(req, "user-1", false)
	h.AddItem(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPut, "/api/cart/items/2",
		strings.NewReader(`{"quantity":3}`))
	req.SetPathValue("productId", "2")
	req = asUser(req, "user-1", false)
	rec := httptest.NewRecorder()

	h.UpdateItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeCart(t, rec.Body.Bytes())
	assert.Equal(t, 3, snapshot.ItemCount)
	assert.Equal(t, 149.97, snapshot.Total)
}

func TestCartHandler_UpdateItem_ZeroRemovesLine(t *testing.T) {
	h := testCartHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId":"1","quantity":2}`))
	req = asUser(req, "user-1", false)
	h.AddItem(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPut, "/api/cart/items/1",
		strings.NewReader(`{"quantity":0}`))
	req.SetPathValue("productId", "1")
	req = asUser(req, "user-1", false)
	rec := httptest.NewRecorder()

	h.UpdateItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeCart(t, rec.Body.Bytes())
	assert.Empty(t, snapshot.Items)
	assert.Equal(t, 0.0, snapshot.Total)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	h := testCartHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId":"1","quantity":1}`))
	req = asUser(req, "user-1", false)
	h.AddItem(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodDelete, "/api/cart/items/1", nil)
	req.SetPathValue("productId", "1")
	req = asUser(req, "user-1", false)
	rec := httptest.NewRecorder()

	h.RemoveItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeCart(t, rec.Body.Bytes())
	assert.Empty(t, snapshot.Items)
}

func TestCartHandler_Clear(t *testing.T) {
	h := testCartHandler(t)

	for _, body := range []string{
		`{"productId":"1","quantity":1}`,
		`{"productId":"2","quantity":2}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
		req = asUser(req, "user-1", false)
		h.AddItem(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	req = asUser(req, "user-1", false)
	rec := httptest.NewRecorder()

	h.Clear(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeCart(t, rec.Body.Bytes())
	assert.Empty(t, snapshot.Items)
	assert.Equal(t, 0, snapshot.ItemCount)
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	h := testCartHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"quantity":2}`))
	req = asUser(req, "user-1", false)
	rec := httptest.NewRecorder()

	h.AddItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
