package crm

import "github.com/jhoicas/crm-pro/internal/domain/entity"

// CreateTag da de alta una etiqueta global.
func (s *Service) CreateTag(name string) *entity.Tag {
	return s.tags.Create(name)
}

// ListTags devuelve las etiquetas en orden de alta.
func (s *Service) ListTags() []*entity.Tag {
	return s.tags.All()
}

// DeleteTag elimina la etiqueta del catálogo. Los clientes que la tengan
// conservan la referencia; es el mismo comportamiento del producto
// original.
func (s *Service) DeleteTag(id int) {
	s.tags.Remove(id)
}

// AttachTag agrega la etiqueta al cliente. Idempotente: etiquetar dos
// veces no duplica. False si cliente o etiqueta no existen.
func (s *Service) AttachTag(clientID, tagID int) bool {
	c, ok := s.clients.Find(clientID)
	if !ok {
		return false
	}
	t, ok := s.tags.Find(tagID)
	if !ok {
		return false
	}
	c.AttachTag(t)
	return true
}

// DetachTag quita la etiqueta del cliente; false si el cliente no existe.
func (s *Service) DetachTag(clientID, tagID int) bool {
	c, ok := s.clients.Find(clientID)
	if !ok {
		return false
	}
	c.DetachTag(tagID)
	return true
}
