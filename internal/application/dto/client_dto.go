package dto

import "time"

// ClientUpdate actualización parcial de un cliente: los campos nil se
// dejan como están.
type ClientUpdate struct {
	Name      *string
	Surname   *string
	Phone     *string
	Email     *string
	Gender    *string
	BirthDate *time.Time
}
