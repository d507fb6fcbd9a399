package usecase

import (
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	orders repository.BeerOrderRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, orders repository.BeerOrderRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, orders: orders}
}

// List devuelve todos los clientes (sin sus pedidos, para no disparar una
// consulta por cliente en el listado).
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c, nil))
	}
	return items, nil
}

// GetByID obtiene un cliente con sus pedidos. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(id int) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	orders, err := uc.orders.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer, orders), nil
}

// Create crea un cliente nuevo. ID, version y timestamps los asigna el store.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer := customerFromRequest(in)
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer, nil), nil
}

// Update reemplaza todos los campos mutables (semántica PUT). Devuelve
// (nil, nil) si el ID no existe.
func (uc *CustomerUseCase) Update(id int, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	replacement := customerFromRequest(in)
	replacement.ID = existing.ID
	if err := uc.repo.Update(replacement); err != nil {
		return nil, err
	}
	replacement.CreatedAt = existing.CreatedAt
	return toCustomerResponse(replacement, nil), nil
}

// Delete elimina un cliente. Devuelve false si el ID no existía.
func (uc *CustomerUseCase) Delete(id int) (bool, error) {
	return uc.repo.Delete(id)
}

// customerFromRequest construye la entidad desde la entrada; nunca lee id,
// version ni timestamps.
func customerFromRequest(in dto.CustomerRequest) *entity.Customer {
	return &entity.Customer{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
	}
}

func toCustomerResponse(c *entity.Customer, orders []*entity.BeerOrder) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	beerOrders := make([]dto.BeerOrderResponse, 0, len(orders))
	for _, o := range orders {
		beerOrders = append(beerOrders, *toBeerOrderResponse(o))
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		Version:      c.Version,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		BeerOrders:   beerOrders,
	}
}
