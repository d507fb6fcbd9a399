package usecase

import (
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// Valores por defecto de paginación para el listado de cervezas.
const (
	DefaultPage = 0
	DefaultSize = 10
)

// BeerUseCase casos de uso CRUD para cervezas, incluido el listado filtrado
// con paginación y el update parcial (PATCH).
type BeerUseCase struct {
	repo repository.BeerRepository
}

// NewBeerUseCase construye el caso de uso.
func NewBeerUseCase(repo repository.BeerRepository) *BeerUseCase {
	return &BeerUseCase{repo: repo}
}

// List devuelve todas las cervezas sin paginar (ruta legacy).
func (uc *BeerUseCase) List() ([]dto.BeerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BeerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBeerResponse(b))
	}
	return items, nil
}

// ListPaged devuelve una página de cervezas con filtros opcionales por nombre
// y estilo (substring, case-insensitive; ambos activos se combinan con AND).
func (uc *BeerUseCase) ListPaged(filter repository.BeerFilter) (*dto.BeerPageResponse, error) {
	if filter.Page < 0 {
		filter.Page = DefaultPage
	}
	if filter.Size <= 0 {
		filter.Size = DefaultSize
	}
	list, total, err := uc.repo.ListFiltered(filter)
	if err != nil {
		return nil, err
	}
	content := make([]dto.BeerResponse, 0, len(list))
	for _, b := range list {
		content = append(content, *toBeerResponse(b))
	}
	totalPages := total / filter.Size
	if total%filter.Size > 0 {
		totalPages++
	}
	return &dto.BeerPageResponse{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        filter.Page,
		Size:          filter.Size,
	}, nil
}

// GetByID obtiene una cerveza por ID. Devuelve (nil, nil) si no existe.
func (uc *BeerUseCase) GetByID(id int) (*dto.BeerResponse, error) {
	beer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if beer == nil {
		return nil, nil
	}
	return toBeerResponse(beer), nil
}

// Create crea una cerveza nueva. ID, version y timestamps los asigna el store;
// cualquier valor que venga en la entrada para esos campos se descarta.
func (uc *BeerUseCase) Create(in dto.BeerRequest) (*dto.BeerResponse, error) {
	beer := beerFromRequest(in)
	if err := uc.repo.Create(beer); err != nil {
		return nil, err
	}
	return toBeerResponse(beer), nil
}

// Update reemplaza todos los campos mutables (semántica PUT: un campo en
// blanco también reemplaza). Devuelve (nil, nil) si el ID no existe.
func (uc *BeerUseCase) Update(id int, in dto.BeerRequest) (*dto.BeerResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	replacement := beerFromRequest(in)
	replacement.ID = existing.ID
	if err := uc.repo.Update(replacement); err != nil {
		return nil, err
	}
	replacement.CreatedAt = existing.CreatedAt
	return toBeerResponse(replacement), nil
}

// Patch aplica un update parcial: solo los campos presentes en la entrada
// sobreescriben; los ausentes quedan intactos. Devuelve (nil, nil) si el ID
// no existe (la fusión nunca se intenta contra un objetivo inexistente).
func (uc *BeerUseCase) Patch(id int, in dto.BeerPatchRequest) (*dto.BeerResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	mergeBeerPatch(existing, in)
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toBeerResponse(existing), nil
}

// Delete elimina una cerveza. Devuelve false si el ID no existía; nunca es
// un error borrar algo que ya no está.
func (uc *BeerUseCase) Delete(id int) (bool, error) {
	return uc.repo.Delete(id)
}

// mergeBeerPatch fusiona el patch sparse sobre la entidad existente. Regla por
// campo: presente sobreescribe, ausente (nil) no toca. Nunca modifica ID,
// version ni timestamps: esos quedan bajo control del store.
func mergeBeerPatch(beer *entity.Beer, in dto.BeerPatchRequest) {
	if in.BeerName != nil {
		beer.BeerName = *in.BeerName
	}
	if in.BeerStyle != nil {
		beer.BeerStyle = *in.BeerStyle
	}
	if in.UPC != nil {
		beer.UPC = *in.UPC
	}
	if in.QuantityOnHand != nil {
		beer.QuantityOnHand = *in.QuantityOnHand
	}
	if in.Price != nil {
		beer.Price = *in.Price
	}
	if in.ImageURL != nil {
		beer.ImageURL = *in.ImageURL
	}
}

// beerFromRequest construye la entidad desde la entrada de create/PUT.
// Por diseño de la función, id, version y timestamps nunca se leen de la entrada.
func beerFromRequest(in dto.BeerRequest) *entity.Beer {
	beer := &entity.Beer{
		BeerName:  in.BeerName,
		BeerStyle: in.BeerStyle,
		UPC:       in.UPC,
		ImageURL:  in.ImageURL,
	}
	if in.QuantityOnHand != nil {
		beer.QuantityOnHand = *in.QuantityOnHand
	}
	if in.Price != nil {
		beer.Price = *in.Price
	}
	return beer
}

func toBeerResponse(b *entity.Beer) *dto.BeerResponse {
	if b == nil {
		return nil
	}
	return &dto.BeerResponse{
		ID:             b.ID,
		Version:        b.Version,
		BeerName:       b.BeerName,
		BeerStyle:      b.BeerStyle,
		UPC:            b.UPC,
		QuantityOnHand: b.QuantityOnHand,
		Price:          b.Price,
		ImageURL:       b.ImageURL,
		CreatedDate:    b.CreatedAt,
		UpdatedDate:    b.UpdatedAt,
	}
}
