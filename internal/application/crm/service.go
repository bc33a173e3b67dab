// Package crm contiene la fachada del CRM: toda operación de negocio
// entra por Service, que coordina los repositorios y las entidades. Los
// adaptadores (consola) solo llaman métodos públicos de Service y
// presentan lo que reciben.
//
// Conviven dos estilos de fallo, heredados del diseño del producto y
// conservados a propósito: las validaciones de datos devuelven errores
// que envuelven domain.ErrInvalidInput, mientras que las operaciones que
// referencian entidades inexistentes no hacen nada y devuelven false. No
// unificarlos: los adaptadores reportan según el estado observado.
package crm

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/repository"
	"github.com/jhoicas/crm-pro/pkg/logger"
)

// Service es la fachada de casos de uso del CRM.
type Service struct {
	clients repository.ClientRepository
	users   repository.UserRepository
	tags    repository.TagRepository
	ledger  repository.SaleRepository

	// Secuencia propia de las ventas directas de cliente, independiente
	// de la del libro general.
	clientSaleSeq int

	now func() time.Time
	log *logger.Logger
}

// Option configura el Service al construirlo.
type Option func(*Service)

// WithClock reemplaza la fuente de tiempo (tests de cortes de fecha).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService construye la fachada con sus puertos inyectados. No hay
// stores globales: cada instancia es dueña de su estado a través de los
// repositorios que recibe.
func NewService(
	clients repository.ClientRepository,
	users repository.UserRepository,
	tags repository.TagRepository,
	ledger repository.SaleRepository,
	log *logger.Logger,
	opts ...Option,
) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Service{
		clients: clients,
		users:   users,
		tags:    tags,
		ledger:  ledger,
		now:     time.Now,
		log:     log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// at aplica el valor por defecto "ahora" a las fechas omitidas por el
// adaptador (valor cero).
func (s *Service) at(date time.Time) time.Time {
	if date.IsZero() {
		return s.now()
	}
	return date
}
