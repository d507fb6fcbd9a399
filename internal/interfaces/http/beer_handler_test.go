package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers HTTP
// ──────────────────────────────────────────────────────────────────────────────

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *stdhttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *stdhttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createBeer(t *testing.T, app *fiber.App, name, style string) dto.BeerResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/beers", map[string]any{
		"beerName":       name,
		"beerStyle":      style,
		"upc":            "0631234200036",
		"quantityOnHand": 100,
		"price":          "12.99",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeBody[dto.BeerResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida completo por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestBeerLifecycle(t *testing.T) {
	app, _, _ := newTestApp()

	created := createBeer(t, app, "Test Beer", "IPA")
	assert.NotZero(t, created.ID)
	assert.Equal(t, 0, created.Version)
	assert.False(t, created.CreatedDate.IsZero())

	// GET
	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/beers/%d", created.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody[dto.BeerResponse](t, resp)
	assert.Equal(t, "Test Beer", got.BeerName)

	// PATCH: solo beerName cambia
	resp = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/api/v1/beers/%d", created.ID),
		map[string]any{"beerName": "Patched"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	patched := decodeBody[dto.BeerResponse](t, resp)
	assert.Equal(t, "Patched", patched.BeerName)
	assert.Equal(t, "IPA", patched.BeerStyle)
	assert.Equal(t, 1, patched.Version)

	// DELETE y GET posterior
	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/beers/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/beers/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/beers/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "segundo delete del mismo ID: 404")
}

func TestBeerUpdate_PutReemplazaCompleto(t *testing.T) {
	app, _, _ := newTestApp()
	created := createBeer(t, app, "Test Beer", "IPA")

	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/v1/beers/%d", created.ID),
		map[string]any{
			"beerName":       "Replaced",
			"beerStyle":      "Lager",
			"upc":            "111",
			"quantityOnHand": 5,
			"price":          "8.50",
		})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeBody[dto.BeerResponse](t, resp)
	assert.Equal(t, "Replaced", out.BeerName)
	assert.Equal(t, "Lager", out.BeerStyle)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, 1, out.Version)
}

func TestBeerUpdate_NoExistente(t *testing.T) {
	app, _, _ := newTestApp()

	resp := doJSON(t, app, fiber.MethodPut, "/api/v1/beers/999", map[string]any{
		"beerName":       "x",
		"beerStyle":      "y",
		"upc":            "1",
		"quantityOnHand": 1,
		"price":          "1.00",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestBeerCreate_Validacion(t *testing.T) {
	app, _, _ := newTestApp()

	casos := []struct {
		nombre string
		body   map[string]any
	}{
		{"sin beerName", map[string]any{
			"beerStyle": "IPA", "upc": "1", "quantityOnHand": 1, "price": "1.00"}},
		{"quantityOnHand cero", map[string]any{
			"beerName": "x", "beerStyle": "IPA", "upc": "1", "quantityOnHand": 0, "price": "1.00"}},
		{"price negativo", map[string]any{
			"beerName": "x", "beerStyle": "IPA", "upc": "1", "quantityOnHand": 1, "price": "-1.00"}},
		{"sin price", map[string]any{
			"beerName": "x", "beerStyle": "IPA", "upc": "1", "quantityOnHand": 1}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/api/v1/beers", tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			errBody := decodeBody[dto.ErrorResponse](t, resp)
			assert.Equal(t, "VALIDATION", errBody.Code)
		})
	}
}

func TestBeerPatch_PriceNegativo(t *testing.T) {
	app, _, _ := newTestApp()
	created := createBeer(t, app, "Test Beer", "IPA")

	resp := doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/api/v1/beers/%d", created.ID),
		map[string]any{"price": "-5.00"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBeerGetByID_IdNoNumerico(t *testing.T) {
	app, _, _ := newTestApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/beers/abc", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_ID", errBody.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado: legacy y paginado con filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestBeerList_SinQueryParamsEsLegacy(t *testing.T) {
	app, _, _ := newTestApp()
	createBeer(t, app, "Una", "IPA")
	createBeer(t, app, "Dos", "Lager")

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/beers", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.BeerResponse](t, resp)
	assert.Len(t, list, 2)
}

func TestBeerList_PaginadoConEnvelope(t *testing.T) {
	app, _, _ := newTestApp()
	for i := 0; i < 15; i++ {
		createBeer(t, app, fmt.Sprintf("Beer %d", i), "IPA")
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/beers?page=0&size=10", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[dto.BeerPageResponse](t, resp)
	assert.Len(t, page.Content, 10)
	assert.Equal(t, 15, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 10, page.Size)

	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/beers?page=1&size=10", nil)
	page = decodeBody[dto.BeerPageResponse](t, resp)
	assert.Len(t, page.Content, 5)
	assert.Equal(t, 1, page.Number)
}

func TestBeerList_FiltradoPorNombreYEstilo(t *testing.T) {
	app, _, _ := newTestApp()
	createBeer(t, app, "Test Beer", "IPA")
	createBeer(t, app, "Test Lager", "Lager")
	createBeer(t, app, "Otra IPA", "IPA")

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/beers?beerName=test&beerStyle=ipa", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[dto.BeerPageResponse](t, resp)
	assert.Equal(t, 1, page.TotalElements, "ambos filtros activos se combinan con AND, case-insensitive")
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Test Beer", page.Content[0].BeerName)

	// Solo filtro, sin page/size explícitos: responde paginado con defaults.
	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/beers?beerName=test", nil)
	page = decodeBody[dto.BeerPageResponse](t, resp)
	assert.Equal(t, 2, page.TotalElements)
	assert.Equal(t, 10, page.Size)
}
