package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// EntityNotFoundError indica que una referencia cruzada (beer de una línea de
// pedido, beer order de un envío) apunta a una entidad que no existe. Lleva el
// tipo y el ID faltante para que la capa HTTP pueda informarlos.
type EntityNotFoundError struct {
	Entity string
	ID     int
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %d no encontrado", e.Entity, e.ID)
}

// Is permite usar errors.Is(err, domain.ErrNotFound) con referencias no resueltas.
func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewEntityNotFound construye el error de referencia no resuelta.
func NewEntityNotFound(entity string, id int) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: entity, ID: id}
}
