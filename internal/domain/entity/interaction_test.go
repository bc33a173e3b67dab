package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pro/internal/domain"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

func TestCall_Missed(t *testing.T) {
	when := time.Now()

	inbound := entity.NewCall(when, "consulta", "entrante")
	assert.True(t, inbound.Missed(), "una llamada entrante queda pendiente de devolver")

	outbound := entity.NewCall(when, "seguimiento", "saliente")
	assert.False(t, outbound.Missed())

	// La dirección se normaliza: mayúsculas y tildes no cambian el resultado.
	assert.True(t, entity.NewCall(when, "consulta", "Entrante").Missed())
}

func TestInteraction_Kinds(t *testing.T) {
	when := time.Now()
	cases := []struct {
		it   entity.Interaction
		kind string
	}{
		{entity.NewCall(when, "t", "saliente"), entity.InteractionCall},
		{entity.NewMeeting(when, "t", "oficina"), entity.InteractionMeeting},
		{entity.NewMessage(when, "t", "a", "b"), entity.InteractionMessage},
		{entity.NewEmail(when, "t", "a", "b", "asunto"), entity.InteractionEmail},
		{entity.NewQuote(when, "t", decimal.NewFromInt(10), "detalle"), entity.InteractionQuote},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.it.Kind())
		assert.Equal(t, when, tc.it.When())
		assert.Equal(t, "t", tc.it.Topic())
	}
}

func TestInteraction_Note(t *testing.T) {
	m := entity.NewMeeting(time.Now(), "demo", "oficina")
	assert.Empty(t, m.Note())

	m.SetNote("llevar contrato impreso")
	assert.Equal(t, "llevar contrato impreso", m.Note())
}

func TestNewSale_Validacion(t *testing.T) {
	_, err := entity.NewSale("", decimal.NewFromInt(10), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewSale("licencia", decimal.NewFromInt(-1), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s, err := entity.NewSale("licencia", decimal.Zero, time.Now())
	require.NoError(t, err, "monto cero es válido")
	assert.True(t, s.Amount.IsZero())
}

func TestNewUser_Validacion(t *testing.T) {
	_, err := entity.NewUser("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewUser("maria")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "al menos un rol")

	_, err = entity.NewUser("maria", "gerente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido")

	u, err := entity.NewUser("maria", entity.RoleSeller, entity.RoleAdministrator)
	require.NoError(t, err)
	assert.True(t, u.HasRole(entity.RoleSeller))
	assert.True(t, u.HasRole(entity.RoleAdministrator))
	assert.True(t, u.IsActive())
}
