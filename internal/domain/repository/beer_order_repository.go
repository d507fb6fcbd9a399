package repository

import "github.com/jhoicas/cerveceria-api/internal/domain/entity"

// BeerOrderRepository define el puerto de persistencia para BeerOrder.
// GetByID y List devuelven el pedido con sus líneas (y el snapshot de la
// cerveza de cada línea) ya cargados.
type BeerOrderRepository interface {
	Create(order *entity.BeerOrder) error
	GetByID(id int) (*entity.BeerOrder, error)
	List() ([]*entity.BeerOrder, error)
	ListByCustomer(customerID int) ([]*entity.BeerOrder, error)
	Update(order *entity.BeerOrder) error
	// Delete elimina el pedido; las líneas y envíos caen en cascada (FK).
	Delete(id int) (bool, error)
}

// BeerOrderLineRepository define el puerto de persistencia para las líneas.
// Las líneas solo se crean junto con su pedido (dentro de la misma tx).
type BeerOrderLineRepository interface {
	Create(line *entity.BeerOrderLine) error
	ListByOrder(orderID int) ([]entity.BeerOrderLine, error)
}
