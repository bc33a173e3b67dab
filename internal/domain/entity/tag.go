package entity

// Tag es una etiqueta global de clasificación. Muchos clientes pueden
// referenciar la misma etiqueta; ninguno es su dueño.
type Tag struct {
	ID   int
	Name string
}

// NewTag construye la etiqueta (texto libre, sin validación).
func NewTag(name string) *Tag { return &Tag{Name: name} }

// EntityID devuelve la identidad de la etiqueta.
func (t *Tag) EntityID() int { return t.ID }

// AssignID fija la identidad; la llama el store al agregar.
func (t *Tag) AssignID(id int) { t.ID = id }

// Matches implementa Searchable sobre el nombre.
func (t *Tag) Matches(term string) bool { return containsFold(t.Name, term) }
