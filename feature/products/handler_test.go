package products_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deposit-desk/core/database"
	"deposit-desk/feature/products"
	"deposit-desk/feature/products/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sellerHeader = "X-Seller-ID"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	feature := products.NewFeature(db, zap.NewNop(), sellerHeader)
	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func createProduct(t *testing.T, app *fiber.App, body string) models.Product {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/products/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(sellerHeader, "seller01")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var product models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&product))
	return product
}

func TestHandler_CRUD(t *testing.T) {
	app := newTestApp(t)

	product := createProduct(t, app, `{"name":"핸드메이드 머그컵","price":15000,"stock":20}`)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil)
	req.Header.Set(sellerHeader, "seller01")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/products/%d", product.ID), strings.NewReader(`{"price":13000}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(sellerHeader, "seller01")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, 13000, updated.Price)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	req.Header.Set(sellerHeader, "seller01")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil)
	req.Header.Set(sellerHeader, "seller01")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_InvalidID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-number", nil)
	req.Header.Set(sellerHeader, "seller01")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandler_MissingSellerScope(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/products/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
