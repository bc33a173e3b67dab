package crm

import "github.com/jhoicas/crm-pro/internal/domain/entity"

// CreateUser da de alta un usuario activo con los roles indicados
// (vendedor, administrador o ambos).
func (s *Service) CreateUser(login string, roles ...string) (*entity.User, error) {
	u, err := s.users.Create(login, roles...)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("usuario", u.ID).Str("login", u.Login).Msg("usuario creado")
	return u, nil
}

// SuspendUser suspende al usuario; false si no existe. Un vendedor
// suspendido no puede asignarse a clientes, pero las asignaciones ya
// hechas se conservan.
func (s *Service) SuspendUser(id int) bool {
	return s.users.Suspend(id)
}

// ActivateUser reactiva al usuario; false si no existe.
func (s *Service) ActivateUser(id int) bool {
	return s.users.Activate(id)
}

// DeleteUser elimina por identidad.
func (s *Service) DeleteUser(id int) {
	s.users.Remove(id)
}

// FindUser obtiene un usuario por identidad.
func (s *Service) FindUser(id int) (*entity.User, bool) {
	return s.users.Find(id)
}

// FindUserByLogin obtiene un usuario por login exacto.
func (s *Service) FindUserByLogin(login string) (*entity.User, bool) {
	return s.users.FindByLogin(login)
}

// ListUsers devuelve los usuarios en orden de alta.
func (s *Service) ListUsers() []*entity.User {
	return s.users.All()
}
