package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pro/internal/domain"
)

// Géneros válidos para Client.
const (
	GenderMasculine   = "masculino"
	GenderFeminine    = "femenino"
	GenderOther       = "otro"
	GenderUnspecified = "sin especificar"
)

// ParseGender normaliza el texto libre del adaptador al género canónico.
// Cualquier valor no reconocido queda como "sin especificar".
func ParseGender(text string) string {
	switch normalizeTerm(strings.TrimSpace(text)) {
	case "masculino", "m":
		return GenderMasculine
	case "femenino", "f":
		return GenderFeminine
	case "otro":
		return GenderOther
	default:
		return GenderUnspecified
	}
}

// Client representa un cliente del CRM con su historial completo de
// contacto: interacciones en orden de registro, etiquetas sin duplicados,
// ventas directas y, a lo sumo, un vendedor asignado (referencia, el
// cliente no es dueño del usuario).
type Client struct {
	ID             int
	Name           string
	Surname        string
	Phone          string
	Email          string
	Gender         string
	BirthDate      time.Time
	Interactions   []Interaction
	Tags           []*Tag
	Sales          []*Sale
	SellerAssigned *User
}

// NewClient valida los campos obligatorios y construye el cliente sin
// identidad asignada (la asigna el store).
func NewClient(name, surname, phone, email, gender string, birthDate time.Time) (*Client, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(surname) == "" {
		return nil, fmt.Errorf("cliente: nombre y apellido son obligatorios: %w", domain.ErrInvalidInput)
	}
	return &Client{
		Name:      name,
		Surname:   surname,
		Phone:     phone,
		Email:     email,
		Gender:    ParseGender(gender),
		BirthDate: birthDate,
	}, nil
}

// EntityID devuelve la identidad del cliente.
func (c *Client) EntityID() int { return c.ID }

// AssignID fija la identidad; la llama el store al agregar.
func (c *Client) AssignID(id int) { c.ID = id }

// FullName nombre y apellido para presentación.
func (c *Client) FullName() string { return c.Name + " " + c.Surname }

// AssignSeller fija la referencia al vendedor solo si el usuario no es
// nulo y tiene rol de vendedor; en cualquier otro caso no hace nada. La
// verificación de estado activo es responsabilidad de la fachada, que la
// ejecuta antes de llamar aquí.
func (c *Client) AssignSeller(u *User) {
	if u == nil || !u.HasRole(RoleSeller) {
		return
	}
	c.SellerAssigned = u
}

// AddInteraction agrega la interacción al final del historial. El orden
// de inserción es el orden de registro, no necesariamente el cronológico.
func (c *Client) AddInteraction(i Interaction) {
	if i == nil {
		return
	}
	c.Interactions = append(c.Interactions, i)
}

// AddSale agrega una venta directa del cliente.
func (c *Client) AddSale(s *Sale) error {
	if s == nil {
		return fmt.Errorf("cliente %d: venta nula: %w", c.ID, domain.ErrInvalidInput)
	}
	c.Sales = append(c.Sales, s)
	return nil
}

// AttachTag agrega la etiqueta si aún no está presente (idempotente).
func (c *Client) AttachTag(t *Tag) {
	if t == nil || c.HasTag(t.ID) {
		return
	}
	c.Tags = append(c.Tags, t)
}

// DetachTag quita la etiqueta por identidad; no hace nada si no estaba.
func (c *Client) DetachTag(tagID int) {
	for i, t := range c.Tags {
		if t.ID == tagID {
			c.Tags = append(c.Tags[:i], c.Tags[i+1:]...)
			return
		}
	}
}

// HasTag informa si el cliente tiene la etiqueta.
func (c *Client) HasTag(tagID int) bool {
	for _, t := range c.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// LatestInteraction devuelve la interacción de fecha máxima. Ante fechas
// empatadas gana la primera registrada (el recorrido compara con After
// estricto). Devuelve nil si el historial está vacío.
func (c *Client) LatestInteraction() Interaction {
	var latest Interaction
	for _, it := range c.Interactions {
		if latest == nil || it.When().After(latest.When()) {
			latest = it
		}
	}
	return latest
}

// LatestInteractionDate fecha de la interacción más reciente; el valor
// cero de time.Time significa "nunca contactado".
func (c *Client) LatestInteractionDate() time.Time {
	if it := c.LatestInteraction(); it != nil {
		return it.When()
	}
	return time.Time{}
}

// TotalSales suma los montos de todas las ventas directas del cliente.
func (c *Client) TotalSales() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Sales {
		total = total.Add(s.Amount)
	}
	return total
}

// Matches implementa Searchable sobre nombre, apellido, teléfono y email.
// El género queda fuera a propósito: buscar "masculino" no debe devolver
// clientes por su género.
func (c *Client) Matches(term string) bool {
	return containsFold(c.Name, term) ||
		containsFold(c.Surname, term) ||
		containsFold(c.Phone, term) ||
		containsFold(c.Email, term)
}
