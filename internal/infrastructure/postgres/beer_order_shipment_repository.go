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

var _ repository.BeerOrderShipmentRepository = (*BeerOrderShipmentRepo)(nil)

const shipmentColumns = `id, version, beer_order_id, shipment_date, carrier, tracking_number, created_at, updated_at`

// BeerOrderShipmentRepo implementación del puerto de envíos (usable con pool o tx).
type BeerOrderShipmentRepo struct {
	q Querier
}

// NewBeerOrderShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBeerOrderShipmentRepository(q Querier) *BeerOrderShipmentRepo {
	return &BeerOrderShipmentRepo{q: q}
}

// Create persiste un nuevo envío. ID, version y timestamps los asigna la DB.
func (r *BeerOrderShipmentRepo) Create(shipment *entity.BeerOrderShipment) error {
	query := `
		INSERT INTO beer_order_shipment (beer_order_id, shipment_date, carrier, tracking_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, version, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		shipment.BeerOrderID, shipment.ShipmentDate, shipment.Carrier, shipment.TrackingNumber,
	).Scan(&shipment.ID, &shipment.Version, &shipment.CreatedAt, &shipment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert beer order shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un envío por ID. Devuelve (nil, nil) si no existe.
func (r *BeerOrderShipmentRepo) GetByID(id int) (*entity.BeerOrderShipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM beer_order_shipment WHERE id = $1`
	s, err := scanShipment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer order shipment: %w", err)
	}
	return s, nil
}

// List devuelve todos los envíos en orden de ID ascendente.
func (r *BeerOrderShipmentRepo) List() ([]*entity.BeerOrderShipment, error) {
	return r.listWhere("", nil)
}

// ListByBeerOrder devuelve los envíos de un pedido.
func (r *BeerOrderShipmentRepo) ListByBeerOrder(beerOrderID int) ([]*entity.BeerOrderShipment, error) {
	return r.listWhere(` WHERE beer_order_id = $1`, []any{beerOrderID})
}

func (r *BeerOrderShipmentRepo) listWhere(where string, args []any) ([]*entity.BeerOrderShipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM beer_order_shipment` + where + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beer order shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.BeerOrderShipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beer order shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos mutables (incluida la referencia al pedido),
// incrementa version y refresca updated_at.
func (r *BeerOrderShipmentRepo) Update(shipment *entity.BeerOrderShipment) error {
	query := `
		UPDATE beer_order_shipment
		SET beer_order_id = $2, shipment_date = $3, carrier = $4, tracking_number = $5,
		    version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING version, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		shipment.ID, shipment.BeerOrderID, shipment.ShipmentDate, shipment.Carrier, shipment.TrackingNumber,
	).Scan(&shipment.Version, &shipment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update beer order shipment: %w", err)
	}
	return nil
}

// Delete elimina un envío por ID. Devuelve false si no existía.
func (r *BeerOrderShipmentRepo) Delete(id int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM beer_order_shipment WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete beer order shipment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanShipment(row pgx.Row) (*entity.BeerOrderShipment, error) {
	var s entity.BeerOrderShipment
	err := row.Scan(&s.ID, &s.Version, &s.BeerOrderID, &s.ShipmentDate,
		&s.Carrier, &s.TrackingNumber, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
