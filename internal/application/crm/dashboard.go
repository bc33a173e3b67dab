package crm

import (
	"sort"
	"time"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

const dashboardRecentLimit = 5 // entradas del widget de actividad reciente

// InactiveClients devuelve los clientes sin actividad en los últimos
// days días. Un cliente es inactivo si no tiene interacciones o si su
// interacción más reciente es estrictamente anterior al corte
// (ahora − days). El que cae exactamente en el corte sigue activo.
func (s *Service) InactiveClients(days int) []*entity.Client {
	cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	var out []*entity.Client
	for _, c := range s.clients.All() {
		latest := c.LatestInteractionDate()
		if latest.IsZero() || latest.Before(cutoff) {
			out = append(out, c)
		}
	}
	return out
}

// ClientsWithoutResponse devuelve los clientes cuya interacción más
// reciente es una llamada entrante: el cliente llamó y el negocio aún no
// devolvió el contacto. Ante fechas empatadas cuenta la primera
// registrada, que es la que conserva LatestInteraction.
func (s *Service) ClientsWithoutResponse() []*entity.Client {
	var out []*entity.Client
	for _, c := range s.clients.All() {
		if call, ok := c.LatestInteraction().(*entity.Call); ok && call.Missed() {
			out = append(out, c)
		}
	}
	return out
}

// DashboardSummary construye el resumen efímero de presentación.
//
// "Recientes" junta las interacciones de todos los clientes, ordena por
// fecha descendente y toma las primeras 5. No excluye fechas futuras:
// es el comportamiento histórico del producto y se conserva tal cual,
// aunque una interacción futura pueda colarse delante de las pasadas.
// "Próximas" sí filtra: reuniones con fecha estrictamente posterior a
// ahora, de la más cercana a la más lejana.
func (s *Service) DashboardSummary() dto.DashboardSummary {
	clients := s.clients.All()
	now := s.now()

	var recent []dto.RecentInteraction
	var upcoming []dto.UpcomingMeeting
	for _, c := range clients {
		for _, it := range c.Interactions {
			recent = append(recent, dto.RecentInteraction{Client: c, Interaction: it})
			if m, ok := it.(*entity.Meeting); ok && m.When().After(now) {
				upcoming = append(upcoming, dto.UpcomingMeeting{Client: c, Meeting: m})
			}
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Interaction.When().After(recent[j].Interaction.When())
	})
	if len(recent) > dashboardRecentLimit {
		recent = recent[:dashboardRecentLimit]
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Meeting.When().Before(upcoming[j].Meeting.When())
	})

	return dto.DashboardSummary{
		TotalClients:     len(clients),
		Recent:           recent,
		UpcomingMeetings: upcoming,
	}
}
