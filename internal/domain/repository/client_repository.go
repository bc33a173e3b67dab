// Package repository define los puertos de persistencia del dominio. La
// fachada depende solo de estas interfaces; la implementación en memoria
// vive en internal/infrastructure/memory.
package repository

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// ClientRepository puerto de persistencia para Client.
type ClientRepository interface {
	// Create valida, construye y almacena un cliente nuevo con identidad
	// asignada por el store.
	Create(name, surname, phone, email, gender string, birthDate time.Time) (*entity.Client, error)
	Find(id int) (*entity.Client, bool)
	Remove(id int)
	All() []*entity.Client
	// Search busca por subcadena sobre nombre, apellido, teléfono y
	// email; término vacío no devuelve nada.
	Search(term string) []*entity.Client
}
