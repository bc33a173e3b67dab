package crm

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// RegisterCall registra una llamada en el historial del cliente; false
// si el cliente no existe. Fecha cero = ahora.
func (s *Service) RegisterCall(clientID int, date time.Time, topic, direction string) bool {
	return s.addInteraction(clientID, entity.NewCall(s.at(date), topic, direction))
}

// RegisterMeeting registra una reunión; false si el cliente no existe.
func (s *Service) RegisterMeeting(clientID int, date time.Time, topic, place string) bool {
	return s.addInteraction(clientID, entity.NewMeeting(s.at(date), topic, place))
}

// RegisterMessage registra un mensaje; false si el cliente no existe.
func (s *Service) RegisterMessage(clientID int, date time.Time, topic, sender, recipient string) bool {
	return s.addInteraction(clientID, entity.NewMessage(s.at(date), topic, sender, recipient))
}

// RegisterEmail registra un correo; false si el cliente no existe.
func (s *Service) RegisterEmail(clientID int, date time.Time, topic, sender, recipient, subject string) bool {
	return s.addInteraction(clientID, entity.NewEmail(s.at(date), topic, sender, recipient, subject))
}

// RegisterQuote registra una cotización; false si el cliente no existe.
func (s *Service) RegisterQuote(clientID int, date time.Time, topic string, amount decimal.Decimal, detail string) bool {
	return s.addInteraction(clientID, entity.NewQuote(s.at(date), topic, amount, detail))
}

func (s *Service) addInteraction(clientID int, it entity.Interaction) bool {
	c, ok := s.clients.Find(clientID)
	if !ok {
		return false
	}
	c.AddInteraction(it)
	s.log.Debug().Int("cliente", clientID).Str("tipo", it.Kind()).Msg("interacción registrada")
	return true
}

// ListInteractions devuelve el historial del cliente en orden de
// registro. kind vacío no filtra por tipo; since nil no aplica piso de
// fecha. Los filtros componen: primero tipo, después fecha (se incluyen
// las interacciones con fecha igual o posterior a since).
func (s *Service) ListInteractions(clientID int, kind string, since *time.Time) []entity.Interaction {
	c, ok := s.clients.Find(clientID)
	if !ok {
		return nil
	}
	out := make([]entity.Interaction, 0, len(c.Interactions))
	for _, it := range c.Interactions {
		if kind != "" && it.Kind() != kind {
			continue
		}
		if since != nil && it.When().Before(*since) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// AttachNote fija la nota de la interacción en la posición dada del
// historial; false si el cliente no existe o el índice está fuera de
// rango.
func (s *Service) AttachNote(clientID, index int, text string) bool {
	c, ok := s.clients.Find(clientID)
	if !ok {
		return false
	}
	if index < 0 || index >= len(c.Interactions) {
		return false
	}
	c.Interactions[index].SetNote(text)
	return true
}
