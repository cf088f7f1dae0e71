package templates_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deposit-desk/core/database"
	"deposit-desk/feature/templates"
	"deposit-desk/feature/templates/models"

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
	require.NoError(t, db.AutoMigrate(&models.Template{}))

	feature := templates.NewFeature(db, zap.NewNop(), sellerHeader)
	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandler_Categories(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/templates/categories", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var categories []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Equal(t, models.Categories(), categories)
}

func TestHandler_CreateAndFilter(t *testing.T) {
	app := newTestApp(t)

	body := `{"category":"greeting","title":"방송 시작 인사","body":"안녕하세요!"}`
	req := httptest.NewRequest(http.MethodPost, "/templates/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(sellerHeader, "seller01")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/templates/?category=greeting", nil)
	req.Header.Set(sellerHeader, "seller01")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.Template
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "방송 시작 인사", list[0].Title)

	req = httptest.NewRequest(http.MethodGet, "/templates/?category=closing", nil)
	req.Header.Set(sellerHeader, "seller01")
	resp, err = app.Test(req)
	require.NoError(t, err)

	list = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestHandler_RejectsUnknownCategory(t *testing.T) {
	app := newTestApp(t)

	body := `{"category":"smalltalk","title":"잡담","body":"..."}`
	req := httptest.NewRequest(http.MethodPost, "/templates/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(sellerHeader, "seller01")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
