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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, version, name, email, phone, address_line_1, address_line_2, city, state, postal_code, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. ID, version y timestamps los asigna la DB.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customer (name, email, phone, address_line_1, address_line_2, city, state, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, version, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		customer.Name, customer.Email, customer.Phone, customer.AddressLine1,
		customer.AddressLine2, customer.City, customer.State, customer.PostalCode,
	).Scan(&customer.ID, &customer.Version, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id int) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes en orden de ID ascendente.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos mutables, incrementa version y refresca updated_at.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customer
		SET name = $2, email = $3, phone = $4, address_line_1 = $5, address_line_2 = $6,
		    city = $7, state = $8, postal_code = $9, version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING version, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.AddressLine1,
		customer.AddressLine2, customer.City, customer.State, customer.PostalCode,
	).Scan(&customer.Version, &customer.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Devuelve false si no existía.
func (r *CustomerRepo) Delete(id int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customer WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Version, &c.Name, &c.Email, &c.Phone, &c.AddressLine1,
		&c.AddressLine2, &c.City, &c.State, &c.PostalCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
