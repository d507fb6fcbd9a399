package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusNew es el estado con el que nace toda línea de pedido. Los campos
// Status restantes son strings libres; no hay tabla de transiciones.
const StatusNew = "NEW"

// BeerOrder representa un pedido. Es dueño exclusivo de sus líneas y envíos:
// al borrar el pedido, la base de datos los elimina en cascada.
type BeerOrder struct {
	ID            int
	Version       int
	CustomerID    *int // FK opcional; la API actual no lo expone
	CustomerRef   string
	PaymentAmount decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Lines         []BeerOrderLine
}

// BeerOrderLine es una línea de pedido. Referencia al pedido dueño y a la
// cerveza solo por ID (claves de búsqueda, no punteros vivos). Beer es un
// snapshot opcional de solo lectura para respuestas.
type BeerOrderLine struct {
	ID                int
	Version           int
	BeerOrderID       int
	BeerID            int
	OrderQuantity     int
	QuantityAllocated int
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Beer              *Beer
}
