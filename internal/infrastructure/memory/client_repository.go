package memory

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación en memoria de ClientRepository.
type ClientRepo struct {
	store *Store[*entity.Client]
}

// NewClientRepository construye el adaptador con su store propio.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{store: NewStore[*entity.Client]()}
}

// Create valida, construye y almacena un cliente nuevo.
func (r *ClientRepo) Create(name, surname, phone, email, gender string, birthDate time.Time) (*entity.Client, error) {
	c, err := entity.NewClient(name, surname, phone, email, gender, birthDate)
	if err != nil {
		return nil, err
	}
	if err := r.store.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Find obtiene un cliente por identidad.
func (r *ClientRepo) Find(id int) (*entity.Client, bool) { return r.store.Find(id) }

// Remove elimina por identidad; las interacciones y ventas del cliente se
// van con él.
func (r *ClientRepo) Remove(id int) { r.store.Remove(id) }

// All devuelve los clientes en orden de alta.
func (r *ClientRepo) All() []*entity.Client { return r.store.All() }

// Search filtra por subcadena usando el Matches de cada cliente (nombre,
// apellido, teléfono, email). Término vacío no devuelve nada.
func (r *ClientRepo) Search(term string) []*entity.Client {
	var out []*entity.Client
	for _, c := range r.store.All() {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out
}
