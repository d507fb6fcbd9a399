package dto

import "time"

// CustomerRequest entrada para crear o reemplazar (PUT) un cliente.
type CustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postalCode" validate:"required"`
}

// CustomerResponse salida de un cliente. Incluye sus pedidos (solo lectura).
// Nota: el cliente usa createdAt/updatedAt en el wire, a diferencia del resto
// de recursos que usan createdDate/updatedDate.
type CustomerResponse struct {
	ID           int                 `json:"id"`
	Version      int                 `json:"version"`
	Name         string              `json:"name"`
	Email        string              `json:"email,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	AddressLine1 string              `json:"addressLine1"`
	AddressLine2 string              `json:"addressLine2,omitempty"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	PostalCode   string              `json:"postalCode"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	BeerOrders   []BeerOrderResponse `json:"beerOrders"`
}
