package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

var _ repository.BeerRepository = (*BeerRepo)(nil)

const beerColumns = `id, version, beer_name, beer_style, upc, quantity_on_hand, price, image_url, created_at, updated_at`

// BeerRepo implementación del puerto BeerRepository sobre PostgreSQL (usable con pool o tx).
type BeerRepo struct {
	q Querier
}

// NewBeerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBeerRepository(q Querier) *BeerRepo {
	return &BeerRepo{q: q}
}

// Create persiste una nueva cerveza. ID, version y timestamps los asigna la DB.
func (r *BeerRepo) Create(beer *entity.Beer) error {
	query := `
		INSERT INTO beer (beer_name, beer_style, upc, quantity_on_hand, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, version, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		beer.BeerName, beer.BeerStyle, beer.UPC, beer.QuantityOnHand, beer.Price, beer.ImageURL,
	).Scan(&beer.ID, &beer.Version, &beer.CreatedAt, &beer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert beer: %w", err)
	}
	return nil
}

// GetByID obtiene una cerveza por ID. Devuelve (nil, nil) si no existe.
func (r *BeerRepo) GetByID(id int) (*entity.Beer, error) {
	query := `SELECT ` + beerColumns + ` FROM beer WHERE id = $1`
	b, err := scanBeer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer: %w", err)
	}
	return b, nil
}

// List devuelve todas las cervezas en orden de ID ascendente.
func (r *BeerRepo) List() ([]*entity.Beer, error) {
	query := `SELECT ` + beerColumns + ` FROM beer ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Beer
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beer: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// ListFiltered devuelve la página solicitada y el total de coincidencias.
// Los filtros activos se aplican con ILIKE (substring, case-insensitive);
// si ambos vienen, deben cumplirse los dos.
func (r *BeerRepo) ListFiltered(filter repository.BeerFilter) ([]*entity.Beer, int, error) {
	where, args := buildBeerFilterWhere(filter)
	ctx := context.Background()

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM beer`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count beers: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+beerColumns+` FROM beer%s ORDER BY id LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, filter.Size, filter.Page*filter.Size)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list beers filtered: %w", err)
	}
	defer rows.Close()
	var list []*entity.Beer
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan beer: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// Update sobreescribe los campos mutables, incrementa version y refresca
// updated_at. Devuelve domain.ErrNotFound si el ID no existe.
func (r *BeerRepo) Update(beer *entity.Beer) error {
	query := `
		UPDATE beer
		SET beer_name = $2, beer_style = $3, upc = $4, quantity_on_hand = $5,
		    price = $6, image_url = $7, version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING version, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		beer.ID, beer.BeerName, beer.BeerStyle, beer.UPC, beer.QuantityOnHand, beer.Price, beer.ImageURL,
	).Scan(&beer.Version, &beer.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update beer: %w", err)
	}
	return nil
}

// Delete elimina una cerveza por ID. Devuelve false si no existía.
func (r *BeerRepo) Delete(id int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM beer WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete beer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// buildBeerFilterWhere arma la cláusula WHERE para los filtros opcionales.
// Un filtro en blanco (tras recortar espacios) no participa.
func buildBeerFilterWhere(filter repository.BeerFilter) (string, []any) {
	var conds []string
	var args []any
	if name := strings.TrimSpace(filter.BeerName); name != "" {
		args = append(args, "%"+name+"%")
		conds = append(conds, fmt.Sprintf("beer_name ILIKE $%d", len(args)))
	}
	if style := strings.TrimSpace(filter.BeerStyle); style != "" {
		args = append(args, "%"+style+"%")
		conds = append(conds, fmt.Sprintf("beer_style ILIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanBeer(row pgx.Row) (*entity.Beer, error) {
	var b entity.Beer
	err := row.Scan(&b.ID, &b.Version, &b.BeerName, &b.BeerStyle, &b.UPC,
		&b.QuantityOnHand, &b.Price, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
