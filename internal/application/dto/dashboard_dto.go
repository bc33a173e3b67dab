// Package dto contiene los objetos de valor que entran y salen de la
// fachada: resúmenes de presentación, reportes y actualizaciones
// parciales. Ninguno se persiste.
package dto

import "github.com/jhoicas/crm-pro/internal/domain/entity"

// RecentInteraction entrada del widget de actividad reciente: la
// interacción junto con el cliente al que pertenece.
type RecentInteraction struct {
	Client      *entity.Client
	Interaction entity.Interaction
}

// UpcomingMeeting reunión futura para el widget de agenda.
type UpcomingMeeting struct {
	Client  *entity.Client
	Meeting *entity.Meeting
}

// DashboardSummary resumen efímero para presentación: total de clientes,
// últimas interacciones y reuniones próximas (de la más cercana a la más
// lejana).
type DashboardSummary struct {
	TotalClients     int
	Recent           []RecentInteraction
	UpcomingMeetings []UpcomingMeeting
}
