package repository

import "github.com/jhoicas/crm-pro/internal/domain/entity"

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(login string, roles ...string) (*entity.User, error)
	Find(id int) (*entity.User, bool)
	FindByLogin(login string) (*entity.User, bool)
	Remove(id int)
	All() []*entity.User
	Search(term string) []*entity.User
	// Suspend y Activate cambian el estado; false si el usuario no existe.
	Suspend(id int) bool
	Activate(id int) bool
}
