package repository

import "github.com/jhoicas/cerveceria-api/internal/domain/entity"

// BeerOrderShipmentRepository define el puerto de persistencia para envíos.
type BeerOrderShipmentRepository interface {
	Create(shipment *entity.BeerOrderShipment) error
	GetByID(id int) (*entity.BeerOrderShipment, error)
	List() ([]*entity.BeerOrderShipment, error)
	ListByBeerOrder(beerOrderID int) ([]*entity.BeerOrderShipment, error)
	Update(shipment *entity.BeerOrderShipment) error
	Delete(id int) (bool, error)
}
