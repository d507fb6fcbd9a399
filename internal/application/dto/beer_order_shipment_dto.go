package dto

import "time"

// BeerOrderShipmentRequest entrada para crear o reemplazar (PUT) un envío.
// El pedido se referencia solo por ID; el servicio lo resuelve y falla si no
// existe. En el update, si beerOrderId cambia, se re-resuelve y re-enlaza.
type BeerOrderShipmentRequest struct {
	BeerOrderID    *int      `json:"beerOrderId" validate:"required"`
	ShipmentDate   time.Time `json:"shipmentDate"`
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"trackingNumber"`
}

// BeerOrderShipmentResponse salida de un envío.
type BeerOrderShipmentResponse struct {
	ID             int       `json:"id"`
	Version        int       `json:"version"`
	BeerOrderID    int       `json:"beerOrderId"`
	ShipmentDate   time.Time `json:"shipmentDate"`
	Carrier        string    `json:"carrier,omitempty"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	CreatedDate    time.Time `json:"createdDate"`
	UpdatedDate    time.Time `json:"updatedDate"`
}
