package entity

import "time"

// Customer representa un cliente de la cervecería.
type Customer struct {
	ID           int
	Version      int
	Name         string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
