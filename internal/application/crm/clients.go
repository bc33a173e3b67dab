package crm

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// CreateClient da de alta un cliente. El género llega como texto libre
// del adaptador y se normaliza al valor canónico.
func (s *Service) CreateClient(name, surname, phone, email, gender string, birthDate time.Time) (*entity.Client, error) {
	c, err := s.clients.Create(name, surname, phone, email, gender, birthDate)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("cliente", c.ID).Str("nombre", c.FullName()).Msg("cliente creado")
	return c, nil
}

// ModifyClient aplica una actualización parcial; false si el cliente no
// existe.
func (s *Service) ModifyClient(id int, upd dto.ClientUpdate) bool {
	c, ok := s.clients.Find(id)
	if !ok {
		return false
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Surname != nil {
		c.Surname = *upd.Surname
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Gender != nil {
		c.Gender = entity.ParseGender(*upd.Gender)
	}
	if upd.BirthDate != nil {
		c.BirthDate = *upd.BirthDate
	}
	return true
}

// RegisterAdditionalData actualiza únicamente género y fecha de
// nacimiento; el resto de los campos queda intacto.
func (s *Service) RegisterAdditionalData(id int, genderText string, birthDate time.Time) bool {
	c, ok := s.clients.Find(id)
	if !ok {
		return false
	}
	c.Gender = entity.ParseGender(genderText)
	c.BirthDate = birthDate
	return true
}

// DeleteClient elimina por identidad; sus interacciones y ventas se van
// con él. La identidad no se reutiliza.
func (s *Service) DeleteClient(id int) {
	s.clients.Remove(id)
	s.log.Debug().Int("cliente", id).Msg("cliente eliminado")
}

// FindClient obtiene un cliente por identidad.
func (s *Service) FindClient(id int) (*entity.Client, bool) {
	return s.clients.Find(id)
}

// SearchClients busca por subcadena en nombre, apellido, teléfono o
// email; nunca por género.
func (s *Service) SearchClients(term string) []*entity.Client {
	return s.clients.Search(term)
}

// AssignSeller asigna el vendedor al cliente. Política fail-silent
// deliberada: si el cliente o el usuario no existen, si el usuario no
// tiene rol de vendedor o si está suspendido, no pasa nada y se devuelve
// false. El adaptador reporta consultando el estado observado.
func (s *Service) AssignSeller(clientID, sellerID int) bool {
	c, ok := s.clients.Find(clientID)
	if !ok {
		return false
	}
	u, ok := s.users.Find(sellerID)
	if !ok {
		return false
	}
	if !u.HasRole(entity.RoleSeller) || !u.IsActive() {
		return false
	}
	c.AssignSeller(u)
	s.log.Debug().Int("cliente", clientID).Int("vendedor", sellerID).Msg("vendedor asignado")
	return true
}
