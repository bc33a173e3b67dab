package memory

import (
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	store *Store[*entity.User]
}

// NewUserRepository construye el adaptador con su store propio.
func NewUserRepository() *UserRepo {
	return &UserRepo{store: NewStore[*entity.User]()}
}

// Create valida, construye y almacena un usuario nuevo (estado activo).
func (r *UserRepo) Create(login string, roles ...string) (*entity.User, error) {
	u, err := entity.NewUser(login, roles...)
	if err != nil {
		return nil, err
	}
	if err := r.store.Add(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Find obtiene un usuario por identidad.
func (r *UserRepo) Find(id int) (*entity.User, bool) { return r.store.Find(id) }

// FindByLogin obtiene un usuario por login exacto.
func (r *UserRepo) FindByLogin(login string) (*entity.User, bool) {
	for _, u := range r.store.All() {
		if u.Login == login {
			return u, true
		}
	}
	return nil, false
}

// Remove elimina por identidad.
func (r *UserRepo) Remove(id int) { r.store.Remove(id) }

// All devuelve los usuarios en orden de alta.
func (r *UserRepo) All() []*entity.User { return r.store.All() }

// Search filtra por subcadena sobre el login.
func (r *UserRepo) Search(term string) []*entity.User {
	var out []*entity.User
	for _, u := range r.store.All() {
		if u.Matches(term) {
			out = append(out, u)
		}
	}
	return out
}

// Suspend marca al usuario como suspendido; false si no existe.
func (r *UserRepo) Suspend(id int) bool {
	u, ok := r.store.Find(id)
	if !ok {
		return false
	}
	u.Suspend()
	return true
}

// Activate reactiva al usuario; false si no existe.
func (r *UserRepo) Activate(id int) bool {
	u, ok := r.store.Find(id)
	if !ok {
		return false
	}
	u.Activate()
	return true
}
