package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/crm-pro/internal/domain"
)

// Roles válidos para User. Un usuario puede tener ambos.
const (
	RoleAdministrator = "administrador"
	RoleSeller        = "vendedor"
)

// Estados válidos para User.
const (
	StatusActive    = "activo"
	StatusSuspended = "suspendido"
)

// User representa un usuario del sistema (vendedor, administrador o
// ambos). Solo los vendedores activos pueden asignarse a clientes.
type User struct {
	ID     int
	Login  string
	Roles  []string
	Status string
}

// NewUser valida login y roles, y construye el usuario activo. Se exige
// al menos un rol conocido.
func NewUser(login string, roles ...string) (*User, error) {
	if strings.TrimSpace(login) == "" {
		return nil, fmt.Errorf("usuario: login obligatorio: %w", domain.ErrInvalidInput)
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("usuario %q: al menos un rol: %w", login, domain.ErrInvalidInput)
	}
	for _, r := range roles {
		if r != RoleAdministrator && r != RoleSeller {
			return nil, fmt.Errorf("usuario %q: rol desconocido %q: %w", login, r, domain.ErrInvalidInput)
		}
	}
	return &User{Login: login, Roles: roles, Status: StatusActive}, nil
}

// EntityID devuelve la identidad del usuario.
func (u *User) EntityID() int { return u.ID }

// AssignID fija la identidad; la llama el store al agregar.
func (u *User) AssignID(id int) { u.ID = id }

// HasRole informa si el usuario tiene el rol indicado.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsActive informa si el usuario está activo (no suspendido).
func (u *User) IsActive() bool { return u.Status == StatusActive }

// Suspend marca al usuario como suspendido.
func (u *User) Suspend() { u.Status = StatusSuspended }

// Activate reactiva al usuario.
func (u *User) Activate() { u.Status = StatusActive }

// Matches implementa Searchable sobre el login.
func (u *User) Matches(term string) bool { return containsFold(u.Login, term) }
