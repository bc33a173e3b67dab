package memory

import (
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo implementación en memoria de TagRepository.
type TagRepo struct {
	store *Store[*entity.Tag]
}

// NewTagRepository construye el adaptador con su store propio.
func NewTagRepository() *TagRepo {
	return &TagRepo{store: NewStore[*entity.Tag]()}
}

// Create construye y almacena una etiqueta nueva.
func (r *TagRepo) Create(name string) *entity.Tag {
	t := entity.NewTag(name)
	// Add solo falla con elemento nulo; aquí nunca ocurre.
	_ = r.store.Add(t)
	return t
}

// Find obtiene una etiqueta por identidad.
func (r *TagRepo) Find(id int) (*entity.Tag, bool) { return r.store.Find(id) }

// Remove elimina por identidad.
func (r *TagRepo) Remove(id int) { r.store.Remove(id) }

// All devuelve las etiquetas en orden de alta.
func (r *TagRepo) All() []*entity.Tag { return r.store.All() }

// Search filtra por subcadena sobre el nombre.
func (r *TagRepo) Search(term string) []*entity.Tag {
	var out []*entity.Tag
	for _, t := range r.store.All() {
		if t.Matches(term) {
			out = append(out, t)
		}
	}
	return out
}
