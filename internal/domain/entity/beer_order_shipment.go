package entity

import "time"

// BeerOrderShipment representa un envío de un pedido. Pertenece a exactamente
// un BeerOrder, referenciado solo por ID.
type BeerOrderShipment struct {
	ID             int
	Version        int
	BeerOrderID    int
	ShipmentDate   time.Time
	Carrier        string
	TrackingNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
