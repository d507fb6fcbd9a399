package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BeerOrderLineRequest línea embebida en la creación de un pedido. La cerveza
// se referencia solo por ID; el servicio la resuelve y falla si no existe.
// quantityAllocated y status se ignoran en la creación: toda línea nace con
// quantityAllocated=0 y status NEW.
type BeerOrderLineRequest struct {
	BeerID            *int   `json:"beerId" validate:"required"`
	OrderQuantity     *int   `json:"orderQuantity" validate:"required,gt=0"`
	QuantityAllocated *int   `json:"quantityAllocated"`
	Status            string `json:"status"`
}

// BeerOrderRequest entrada para crear o reemplazar (PUT) un pedido. En el
// update solo se reemplazan los campos de cabecera; las líneas no se tocan.
type BeerOrderRequest struct {
	CustomerRef    string                 `json:"customerRef" validate:"required"`
	PaymentAmount  *decimal.Decimal       `json:"paymentAmount" validate:"required"`
	Status         string                 `json:"status"`
	BeerOrderLines []BeerOrderLineRequest `json:"beerOrderLines" validate:"dive"`
}

// BeerOrderLineResponse salida de una línea. beer es un snapshot de solo
// lectura de la cerveza referenciada, para mostrar sin otra consulta.
type BeerOrderLineResponse struct {
	ID                int           `json:"id"`
	Version           int           `json:"version"`
	BeerID            int           `json:"beerId"`
	OrderQuantity     int           `json:"orderQuantity"`
	QuantityAllocated int           `json:"quantityAllocated"`
	Status            string        `json:"status"`
	CreatedDate       time.Time     `json:"createdDate"`
	UpdatedDate       time.Time     `json:"updatedDate"`
	Beer              *BeerResponse `json:"beer,omitempty"`
}

// BeerOrderResponse salida de un pedido con sus líneas.
type BeerOrderResponse struct {
	ID             int                     `json:"id"`
	Version        int                     `json:"version"`
	CustomerRef    string                  `json:"customerRef"`
	PaymentAmount  decimal.Decimal         `json:"paymentAmount"`
	Status         string                  `json:"status,omitempty"`
	CreatedDate    time.Time               `json:"createdDate"`
	UpdatedDate    time.Time               `json:"updatedDate"`
	BeerOrderLines []BeerOrderLineResponse `json:"beerOrderLines"`
}
