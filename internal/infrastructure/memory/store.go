// Package memory implementa los puertos de persistencia sobre
// colecciones en memoria. El estado vive lo que vive el proceso; no hay
// almacenamiento durable ni acceso concurrente en el modelo de uso.
package memory

import (
	"fmt"
	"reflect"

	"github.com/jhoicas/crm-pro/internal/domain"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// Store es la colección genérica de una clase de entidad. Es dueño de la
// asignación de identidad: secuencial desde 1, nunca reutilizada aun
// después de eliminar elementos. Mantiene el orden de inserción.
type Store[T entity.Entity] struct {
	items  []T
	nextID int
}

// NewStore construye un store vacío con la secuencia en 1.
func NewStore[T entity.Entity]() *Store[T] {
	return &Store[T]{nextID: 1}
}

// Add agrega el elemento al final. Si llega sin identidad (cero) le
// asigna la siguiente de la secuencia. Un elemento nulo es un error de
// validación.
func (s *Store[T]) Add(item T) error {
	if isNil(item) {
		return fmt.Errorf("store: elemento nulo: %w", domain.ErrInvalidInput)
	}
	if item.EntityID() == 0 {
		item.AssignID(s.nextID)
		s.nextID++
	} else if item.EntityID() >= s.nextID {
		// Identidad preasignada: la secuencia avanza para no repetirla.
		s.nextID = item.EntityID() + 1
	}
	s.items = append(s.items, item)
	return nil
}

// Find recorre linealmente y devuelve la primera (y única) coincidencia.
// La ausencia no es un error.
func (s *Store[T]) Find(id int) (T, bool) {
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Remove elimina por identidad; no hace nada si no existe. La identidad
// eliminada no vuelve a asignarse.
func (s *Store[T]) Remove(id int) {
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// All devuelve una copia de la colección en orden de inserción.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len cantidad de elementos almacenados.
func (s *Store[T]) Len() int { return len(s.items) }

// isNil detecta tanto el nil plano como el puntero tipado nulo que llega
// envuelto en la interfaz.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
