package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de interacción.
const (
	InteractionCall    = "llamada"
	InteractionMeeting = "reunion"
	InteractionMessage = "mensaje"
	InteractionEmail   = "correo"
	InteractionQuote   = "cotizacion"
)

// Direcciones de llamada.
const (
	CallInbound  = "entrante"
	CallOutbound = "saliente"
)

// Interaction es un evento de contacto registrado con un cliente. Es un
// tipo suma cerrado: las cinco variantes viven en este paquete y el
// despacho se hace por type switch (íconos, detección de llamadas sin
// respuesta). Cada interacción pertenece a exactamente un cliente y se
// crea únicamente a través de la fachada.
type Interaction interface {
	Kind() string
	When() time.Time
	Topic() string
	Note() string
	SetNote(text string)
}

// base campos comunes a todas las variantes: fecha, tema y nota opcional.
type base struct {
	date  time.Time
	topic string
	note  string
}

func (b *base) When() time.Time     { return b.date }
func (b *base) Topic() string       { return b.topic }
func (b *base) Note() string        { return b.note }
func (b *base) SetNote(text string) { b.note = text }

// Call llamada telefónica con el cliente.
type Call struct {
	base
	Direction string // entrante | saliente
}

// NewCall construye una llamada.
func NewCall(date time.Time, topic, direction string) *Call {
	return &Call{base: base{date: date, topic: topic}, Direction: normalizeTerm(direction)}
}

// Kind devuelve el discriminante de la variante.
func (c *Call) Kind() string { return InteractionCall }

// Missed indica si la llamada quedó sin respuesta: una llamada entrante
// es un contacto que el cliente inició y que el negocio aún no devuelve.
func (c *Call) Missed() bool { return c.Direction == CallInbound }

// Meeting reunión presencial o virtual.
type Meeting struct {
	base
	Place string
}

// NewMeeting construye una reunión.
func NewMeeting(date time.Time, topic, place string) *Meeting {
	return &Meeting{base: base{date: date, topic: topic}, Place: place}
}

// Kind devuelve el discriminante de la variante.
func (m *Meeting) Kind() string { return InteractionMeeting }

// Message mensaje de texto o chat.
type Message struct {
	base
	Sender    string
	Recipient string
}

// NewMessage construye un mensaje.
func NewMessage(date time.Time, topic, sender, recipient string) *Message {
	return &Message{base: base{date: date, topic: topic}, Sender: sender, Recipient: recipient}
}

// Kind devuelve el discriminante de la variante.
func (m *Message) Kind() string { return InteractionMessage }

// Email correo electrónico con asunto propio.
type Email struct {
	base
	Sender    string
	Recipient string
	Subject   string
}

// NewEmail construye un correo.
func NewEmail(date time.Time, topic, sender, recipient, subject string) *Email {
	return &Email{base: base{date: date, topic: topic}, Sender: sender, Recipient: recipient, Subject: subject}
}

// Kind devuelve el discriminante de la variante.
func (e *Email) Kind() string { return InteractionEmail }

// Quote cotización enviada al cliente.
type Quote struct {
	base
	Amount decimal.Decimal
	Detail string
}

// NewQuote construye una cotización.
func NewQuote(date time.Time, topic string, amount decimal.Decimal, detail string) *Quote {
	return &Quote{base: base{date: date, topic: topic}, Amount: amount, Detail: detail}
}

// Kind devuelve el discriminante de la variante.
func (q *Quote) Kind() string { return InteractionQuote }
