package http

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
)

func createCustomer(t *testing.T, app *fiber.App, name string) dto.CustomerResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/customers", map[string]any{
		"name":         name,
		"email":        "john@example.com",
		"phone":        "555-1234",
		"addressLine1": "Calle 1 # 2-3",
		"city":         "Bogotá",
		"state":        "Cundinamarca",
		"postalCode":   "110111",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeBody[dto.CustomerResponse](t, resp)
}

func TestCustomerLifecycle(t *testing.T) {
	app, _, _ := newTestApp()

	created := createCustomer(t, app, "John Thompson")
	assert.NotZero(t, created.ID)
	assert.Equal(t, 0, created.Version)

	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/customers/%d", created.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody[dto.CustomerResponse](t, resp)
	assert.Equal(t, "John Thompson", got.Name)
	assert.Empty(t, got.BeerOrders)

	resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/v1/customers/%d", created.ID),
		map[string]any{
			"name":         "Jane Smith",
			"addressLine1": "Carrera 9 # 10-11",
			"city":         "Medellín",
			"state":        "Antioquia",
			"postalCode":   "050001",
		})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decodeBody[dto.CustomerResponse](t, resp)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, "", updated.Email, "el PUT también reemplaza con vacío")
	assert.Equal(t, 1, updated.Version)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/customers/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/customers/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCustomerCreate_Validacion(t *testing.T) {
	app, _, _ := newTestApp()

	// Faltan campos de dirección requeridos.
	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/customers", map[string]any{
		"name": "John",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)

	// Email con formato inválido (el email es opcional, pero si viene debe ser válido).
	resp = doJSON(t, app, fiber.MethodPost, "/api/v1/customers", map[string]any{
		"name":         "John",
		"email":        "no-es-un-email",
		"addressLine1": "Calle 1",
		"city":         "Bogotá",
		"state":        "Cundinamarca",
		"postalCode":   "110111",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCustomerList(t *testing.T) {
	app, _, _ := newTestApp()
	createCustomer(t, app, "Uno")
	createCustomer(t, app, "Dos")

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.CustomerResponse](t, resp)
	assert.Len(t, list, 2)
}
