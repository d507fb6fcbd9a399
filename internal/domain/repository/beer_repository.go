package repository

import "github.com/jhoicas/cerveceria-api/internal/domain/entity"

// BeerFilter filtros opcionales y paginación para el listado de cervezas.
// Un filtro vacío (tras recortar espacios) no aplica; si ambos vienen, la
// cerveza debe cumplir los dos (AND). Page es base cero.
type BeerFilter struct {
	BeerName  string
	BeerStyle string
	Page      int
	Size      int
}

// BeerRepository define el puerto de persistencia para Beer.
type BeerRepository interface {
	Create(beer *entity.Beer) error
	GetByID(id int) (*entity.Beer, error)
	List() ([]*entity.Beer, error)
	// ListFiltered devuelve la página solicitada y el total de coincidencias.
	ListFiltered(filter BeerFilter) ([]*entity.Beer, int, error)
	Update(beer *entity.Beer) error
	Delete(id int) (bool, error)
}
