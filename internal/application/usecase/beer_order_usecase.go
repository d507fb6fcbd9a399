package usecase

import (
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// OrderTxRunner ejecuta un callback con repos atados a una misma transacción.
// La creación de un pedido (cabecera + líneas) confirma completa o nada.
type OrderTxRunner interface {
	Run(fn func(
		orderRepo repository.BeerOrderRepository,
		lineRepo repository.BeerOrderLineRepository,
		beerRepo repository.BeerRepository,
	) error) error
}

// BeerOrderUseCase casos de uso CRUD para pedidos. La creación resuelve la
// cerveza de cada línea y falla rápido si alguna referencia no existe.
type BeerOrderUseCase struct {
	tx     OrderTxRunner
	orders repository.BeerOrderRepository
}

// NewBeerOrderUseCase construye el caso de uso.
func NewBeerOrderUseCase(tx OrderTxRunner, orders repository.BeerOrderRepository) *BeerOrderUseCase {
	return &BeerOrderUseCase{tx: tx, orders: orders}
}

// List devuelve todos los pedidos con sus líneas.
func (uc *BeerOrderUseCase) List() ([]dto.BeerOrderResponse, error) {
	list, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BeerOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toBeerOrderResponse(o))
	}
	return items, nil
}

// GetByID obtiene un pedido con sus líneas. Devuelve (nil, nil) si no existe.
func (uc *BeerOrderUseCase) GetByID(id int) (*dto.BeerOrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toBeerOrderResponse(order), nil
}

// Create crea un pedido con sus líneas en una sola transacción. Cada línea
// referencia una cerveza por ID; si alguna no existe, la operación falla con
// EntityNotFoundError y no persiste nada. Toda línea nueva nace con
// quantityAllocated=0 y status NEW, ignore lo que diga la entrada.
func (uc *BeerOrderUseCase) Create(in dto.BeerOrderRequest) (*dto.BeerOrderResponse, error) {
	order := &entity.BeerOrder{
		CustomerRef:   in.CustomerRef,
		PaymentAmount: *in.PaymentAmount,
		Status:        in.Status,
	}
	err := uc.tx.Run(func(
		orderRepo repository.BeerOrderRepository,
		lineRepo repository.BeerOrderLineRepository,
		beerRepo repository.BeerRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, lineIn := range in.BeerOrderLines {
			beer, err := beerRepo.GetByID(*lineIn.BeerID)
			if err != nil {
				return err
			}
			if beer == nil {
				return domain.NewEntityNotFound("Beer", *lineIn.BeerID)
			}
			line := entity.BeerOrderLine{
				BeerOrderID:       order.ID,
				BeerID:            beer.ID,
				OrderQuantity:     *lineIn.OrderQuantity,
				QuantityAllocated: 0,
				Status:            entity.StatusNew,
			}
			if err := lineRepo.Create(&line); err != nil {
				return err
			}
			line.Beer = beer
			order.Lines = append(order.Lines, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBeerOrderResponse(order), nil
}

// Update reemplaza los campos de cabecera (customerRef, paymentAmount,
// status); las líneas existentes no se tocan. Devuelve (nil, nil) si el ID
// no existe.
func (uc *BeerOrderUseCase) Update(id int, in dto.BeerOrderRequest) (*dto.BeerOrderResponse, error) {
	existing, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.CustomerRef = in.CustomerRef
	existing.PaymentAmount = *in.PaymentAmount
	existing.Status = in.Status
	if err := uc.orders.Update(existing); err != nil {
		return nil, err
	}
	return toBeerOrderResponse(existing), nil
}

// Delete elimina un pedido; sus líneas y envíos caen en cascada. Devuelve
// false si el ID no existía.
func (uc *BeerOrderUseCase) Delete(id int) (bool, error) {
	return uc.orders.Delete(id)
}

func toBeerOrderResponse(o *entity.BeerOrder) *dto.BeerOrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.BeerOrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.BeerOrderLineResponse{
			ID:                l.ID,
			Version:           l.Version,
			BeerID:            l.BeerID,
			OrderQuantity:     l.OrderQuantity,
			QuantityAllocated: l.QuantityAllocated,
			Status:            l.Status,
			CreatedDate:       l.CreatedAt,
			UpdatedDate:       l.UpdatedAt,
			Beer:              toBeerResponse(l.Beer),
		})
	}
	return &dto.BeerOrderResponse{
		ID:             o.ID,
		Version:        o.Version,
		CustomerRef:    o.CustomerRef,
		PaymentAmount:  o.PaymentAmount,
		Status:         o.Status,
		CreatedDate:    o.CreatedAt,
		UpdatedDate:    o.UpdatedAt,
		BeerOrderLines: lines,
	}
}
