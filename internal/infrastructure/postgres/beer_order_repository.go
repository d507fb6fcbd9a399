package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

var _ repository.BeerOrderRepository = (*BeerOrderRepo)(nil)
var _ repository.BeerOrderLineRepository = (*BeerOrderLineRepo)(nil)

const beerOrderColumns = `id, version, customer_id, customer_ref, payment_amount, status, created_at, updated_at`

// BeerOrderRepo implementación del puerto BeerOrderRepository (usable con pool o tx).
type BeerOrderRepo struct {
	q Querier
}

// NewBeerOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBeerOrderRepository(q Querier) *BeerOrderRepo {
	return &BeerOrderRepo{q: q}
}

// Create persiste la cabecera del pedido. Las líneas se insertan aparte
// (misma tx) vía BeerOrderLineRepository.
func (r *BeerOrderRepo) Create(order *entity.BeerOrder) error {
	query := `
		INSERT INTO beer_order (customer_id, customer_ref, payment_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, version, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		order.CustomerID, order.CustomerRef, order.PaymentAmount, order.Status,
	).Scan(&order.ID, &order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert beer order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas. Devuelve (nil, nil) si no existe.
func (r *BeerOrderRepo) GetByID(id int) (*entity.BeerOrder, error) {
	query := `SELECT ` + beerOrderColumns + ` FROM beer_order WHERE id = $1`
	o, err := scanBeerOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer order: %w", err)
	}
	lines, err := NewBeerOrderLineRepository(r.q).ListByOrder(id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return o, nil
}

// List devuelve todos los pedidos con sus líneas, en orden de ID ascendente.
func (r *BeerOrderRepo) List() ([]*entity.BeerOrder, error) {
	return r.listWhere("", nil)
}

// ListByCustomer devuelve los pedidos de un cliente con sus líneas.
func (r *BeerOrderRepo) ListByCustomer(customerID int) ([]*entity.BeerOrder, error) {
	return r.listWhere(" WHERE customer_id = $1", []any{customerID})
}

func (r *BeerOrderRepo) listWhere(where string, args []any) ([]*entity.BeerOrder, error) {
	query := `SELECT ` + beerOrderColumns + ` FROM beer_order` + where + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beer orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.BeerOrder
	var ids []int
	for rows.Next() {
		o, err := scanBeerOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beer order: %w", err)
		}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	// Una sola consulta para las líneas de todos los pedidos listados.
	lines, err := NewBeerOrderLineRepository(r.q).listByOrders(ids)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[int][]entity.BeerOrderLine, len(list))
	for _, l := range lines {
		byOrder[l.BeerOrderID] = append(byOrder[l.BeerOrderID], l)
	}
	for _, o := range list {
		o.Lines = byOrder[o.ID]
	}
	return list, nil
}

// Update sobreescribe los campos de cabecera (customer_ref, payment_amount,
// status), incrementa version y refresca updated_at. Las líneas no se tocan.
func (r *BeerOrderRepo) Update(order *entity.BeerOrder) error {
	query := `
		UPDATE beer_order
		SET customer_ref = $2, payment_amount = $3, status = $4,
		    version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING version, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		order.ID, order.CustomerRef, order.PaymentAmount, order.Status,
	).Scan(&order.Version, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update beer order: %w", err)
	}
	return nil
}

// Delete elimina un pedido; líneas y envíos caen en cascada (FK ON DELETE CASCADE).
func (r *BeerOrderRepo) Delete(id int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM beer_order WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete beer order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanBeerOrder(row pgx.Row) (*entity.BeerOrder, error) {
	var o entity.BeerOrder
	err := row.Scan(&o.ID, &o.Version, &o.CustomerID, &o.CustomerRef,
		&o.PaymentAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// BeerOrderLineRepo implementación del puerto de líneas de pedido.
type BeerOrderLineRepo struct {
	q Querier
}

// NewBeerOrderLineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBeerOrderLineRepository(q Querier) *BeerOrderLineRepo {
	return &BeerOrderLineRepo{q: q}
}

// Create persiste una línea de pedido. ID, version y timestamps los asigna la DB.
func (r *BeerOrderLineRepo) Create(line *entity.BeerOrderLine) error {
	query := `
		INSERT INTO beer_order_line (beer_order_id, beer_id, order_quantity, quantity_allocated, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, version, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		line.BeerOrderID, line.BeerID, line.OrderQuantity, line.QuantityAllocated, line.Status,
	).Scan(&line.ID, &line.Version, &line.CreatedAt, &line.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert beer order line: %w", err)
	}
	return nil
}

// ListByOrder devuelve las líneas de un pedido con el snapshot de su cerveza.
func (r *BeerOrderLineRepo) ListByOrder(orderID int) ([]entity.BeerOrderLine, error) {
	return r.list(` WHERE l.beer_order_id = $1`, []any{orderID})
}

func (r *BeerOrderLineRepo) listByOrders(orderIDs []int) ([]entity.BeerOrderLine, error) {
	return r.list(` WHERE l.beer_order_id = ANY($1)`, []any{orderIDs})
}

func (r *BeerOrderLineRepo) list(where string, args []any) ([]entity.BeerOrderLine, error) {
	query := `
		SELECT l.id, l.version, l.beer_order_id, l.beer_id, l.order_quantity,
		       l.quantity_allocated, l.status, l.created_at, l.updated_at,
		       b.id, b.version, b.beer_name, b.beer_style, b.upc,
		       b.quantity_on_hand, b.price, b.image_url, b.created_at, b.updated_at
		FROM beer_order_line l
		JOIN beer b ON b.id = l.beer_id` + where + ` ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beer order lines: %w", err)
	}
	defer rows.Close()
	var list []entity.BeerOrderLine
	for rows.Next() {
		var l entity.BeerOrderLine
		var b entity.Beer
		err := rows.Scan(&l.ID, &l.Version, &l.BeerOrderID, &l.BeerID, &l.OrderQuantity,
			&l.QuantityAllocated, &l.Status, &l.CreatedAt, &l.UpdatedAt,
			&b.ID, &b.Version, &b.BeerName, &b.BeerStyle, &b.UPC,
			&b.QuantityOnHand, &b.Price, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan beer order line: %w", err)
		}
		l.Beer = &b
		list = append(list, l)
	}
	return list, rows.Err()
}
