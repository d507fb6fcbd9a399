package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BeerRequest entrada para crear o reemplazar (PUT) una cerveza. Los campos
// id, version y timestamps nunca se leen de la entrada: los asigna el store.
type BeerRequest struct {
	BeerName       string           `json:"beerName" validate:"required"`
	BeerStyle      string           `json:"beerStyle" validate:"required"`
	UPC            string           `json:"upc" validate:"required"`
	QuantityOnHand *int             `json:"quantityOnHand" validate:"required,gt=0"`
	Price          *decimal.Decimal `json:"price" validate:"required"`
	ImageURL       string           `json:"imageUrl"`
}

// BeerPatchRequest entrada sparse para PATCH. Cada campo es independiente:
// nil significa "no tocar", un valor presente sobreescribe. Distinto de PUT,
// donde un campo en blanco sí reemplaza al existente.
type BeerPatchRequest struct {
	BeerName       *string          `json:"beerName"`
	BeerStyle      *string          `json:"beerStyle"`
	UPC            *string          `json:"upc"`
	QuantityOnHand *int             `json:"quantityOnHand"`
	Price          *decimal.Decimal `json:"price"`
	ImageURL       *string          `json:"imageUrl"`
}

// BeerResponse salida de una cerveza. id, version y timestamps son de solo lectura.
type BeerResponse struct {
	ID             int             `json:"id"`
	Version        int             `json:"version"`
	BeerName       string          `json:"beerName"`
	BeerStyle      string          `json:"beerStyle"`
	UPC            string          `json:"upc"`
	QuantityOnHand int             `json:"quantityOnHand"`
	Price          decimal.Decimal `json:"price"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	CreatedDate    time.Time       `json:"createdDate"`
	UpdatedDate    time.Time       `json:"updatedDate"`
}

// BeerPageResponse página de cervezas con el total de coincidencias, para
// que el cliente pueda pintar la paginación.
type BeerPageResponse struct {
	Content       []BeerResponse `json:"content"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Number        int            `json:"number"`
	Size          int            `json:"size"`
}
