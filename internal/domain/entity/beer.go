package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Beer representa una cerveza del catálogo. ID, Version y los timestamps los
// asigna y mantiene la base de datos; el cliente nunca los escribe.
type Beer struct {
	ID             int
	Version        int
	BeerName       string
	BeerStyle      string
	UPC            string // Universal Product Code del producto
	QuantityOnHand int
	Price          decimal.Decimal
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
