package usecase

import (
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// BeerOrderShipmentUseCase casos de uso CRUD para envíos. Todo envío debe
// referenciar un pedido existente; la resolución ocurre en el servicio, no
// en el mapeo.
type BeerOrderShipmentUseCase struct {
	repo   repository.BeerOrderShipmentRepository
	orders repository.BeerOrderRepository
}

// NewBeerOrderShipmentUseCase construye el caso de uso.
func NewBeerOrderShipmentUseCase(repo repository.BeerOrderShipmentRepository, orders repository.BeerOrderRepository) *BeerOrderShipmentUseCase {
	return &BeerOrderShipmentUseCase{repo: repo, orders: orders}
}

// List devuelve todos los envíos.
func (uc *BeerOrderShipmentUseCase) List() ([]dto.BeerOrderShipmentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}

// ListByBeerOrder devuelve los envíos de un pedido.
func (uc *BeerOrderShipmentUseCase) ListByBeerOrder(beerOrderID int) ([]dto.BeerOrderShipmentResponse, error) {
	list, err := uc.repo.ListByBeerOrder(beerOrderID)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}

// GetByID obtiene un envío por ID. Devuelve (nil, nil) si no existe.
func (uc *BeerOrderShipmentUseCase) GetByID(id int) (*dto.BeerOrderShipmentResponse, error) {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, nil
	}
	return toShipmentResponse(shipment), nil
}

// Create crea un envío. Resuelve el pedido referenciado y falla con
// EntityNotFoundError si no existe; no se persiste nada en ese caso.
func (uc *BeerOrderShipmentUseCase) Create(in dto.BeerOrderShipmentRequest) (*dto.BeerOrderShipmentResponse, error) {
	order, err := uc.orders.GetByID(*in.BeerOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewEntityNotFound("Beer Order", *in.BeerOrderID)
	}
	shipment := &entity.BeerOrderShipment{
		BeerOrderID:    order.ID,
		ShipmentDate:   in.ShipmentDate,
		Carrier:        in.Carrier,
		TrackingNumber: in.TrackingNumber,
	}
	if err := uc.repo.Create(shipment); err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment), nil
}

// Update reemplaza los campos mutables. Si el beerOrderId entrante difiere
// del actual, re-resuelve el nuevo pedido y re-enlaza el envío; si no existe,
// falla con EntityNotFoundError. Devuelve (nil, nil) si el envío no existe.
func (uc *BeerOrderShipmentUseCase) Update(id int, in dto.BeerOrderShipmentRequest) (*dto.BeerOrderShipmentResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if *in.BeerOrderID != existing.BeerOrderID {
		order, err := uc.orders.GetByID(*in.BeerOrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.NewEntityNotFound("Beer Order", *in.BeerOrderID)
		}
		existing.BeerOrderID = order.ID
	}
	existing.ShipmentDate = in.ShipmentDate
	existing.Carrier = in.Carrier
	existing.TrackingNumber = in.TrackingNumber
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toShipmentResponse(existing), nil
}

// Delete elimina un envío. Devuelve false si el ID no existía.
func (uc *BeerOrderShipmentUseCase) Delete(id int) (bool, error) {
	return uc.repo.Delete(id)
}

func toShipmentResponse(s *entity.BeerOrderShipment) *dto.BeerOrderShipmentResponse {
	if s == nil {
		return nil
	}
	return &dto.BeerOrderShipmentResponse{
		ID:             s.ID,
		Version:        s.Version,
		BeerOrderID:    s.BeerOrderID,
		ShipmentDate:   s.ShipmentDate,
		Carrier:        s.Carrier,
		TrackingNumber: s.TrackingNumber,
		CreatedDate:    s.CreatedAt,
		UpdatedDate:    s.UpdatedAt,
	}
}

func toShipmentResponses(list []*entity.BeerOrderShipment) []dto.BeerOrderShipmentResponse {
	items := make([]dto.BeerOrderShipmentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShipmentResponse(s))
	}
	return items
}
