package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pro/internal/domain"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/infrastructure/memory"
)

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newTag(t *testing.T, r *memory.TagRepo, name string) *entity.Tag {
	t.Helper()
	tag := r.Create(name)
	require.NotNil(t, tag)
	return tag
}

func TestStore_IdentidadSecuencialDesdeUno(t *testing.T) {
	r := memory.NewTagRepository()

	a := newTag(t, r, "vip")
	b := newTag(t, r, "moroso")
	c := newTag(t, r, "mayorista")

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 3, c.ID)
}

func TestStore_IdentidadNoSeReutilizaTrasEliminar(t *testing.T) {
	r := memory.NewTagRepository()
	newTag(t, r, "vip")
	b := newTag(t, r, "moroso")

	r.Remove(b.ID)
	_, ok := r.Find(b.ID)
	require.False(t, ok, "la etiqueta eliminada no debe encontrarse")

	c := newTag(t, r, "mayorista")
	assert.Equal(t, 3, c.ID, "la identidad 2 no debe reasignarse")
}

func TestStore_AddNuloEsErrorDeValidacion(t *testing.T) {
	s := memory.NewStore[*entity.Tag]()

	err := s.Add(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, s.Len())
}

func TestStore_FindAusenteNoEsError(t *testing.T) {
	r := memory.NewTagRepository()
	_, ok := r.Find(99)
	assert.False(t, ok)
}

func TestStore_RemoveAusenteEsNoOp(t *testing.T) {
	r := memory.NewTagRepository()
	newTag(t, r, "vip")
	r.Remove(99)
	assert.Len(t, r.All(), 1)
}

func TestStore_AllConservaOrdenDeInsercion(t *testing.T) {
	r := memory.NewTagRepository()
	newTag(t, r, "c")
	newTag(t, r, "a")
	newTag(t, r, "b")

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Name)
	assert.Equal(t, "a", all[1].Name)
	assert.Equal(t, "b", all[2].Name)
}

func TestClientRepo_BusquedaPorSubcadena(t *testing.T) {
	r := memory.NewClientRepository()
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	_, err := r.Create("Juan", "Pérez", "099123456", "juan@perez.com", "masculino", birth)
	require.NoError(t, err)
	_, err = r.Create("Ana", "García", "098765432", "ana@garcia.com", "femenino", birth)
	require.NoError(t, err)

	t.Run("por nombre, insensible a mayúsculas", func(t *testing.T) {
		got := r.Search("juan")
		require.Len(t, got, 1)
		assert.Equal(t, "Juan", got[0].Name)
	})

	t.Run("por apellido sin tilde", func(t *testing.T) {
		got := r.Search("perez")
		require.Len(t, got, 1)
		assert.Equal(t, "Pérez", got[0].Surname)
	})

	t.Run("por teléfono y por email", func(t *testing.T) {
		assert.Len(t, r.Search("0991"), 1)
		assert.Len(t, r.Search("garcia.com"), 1)
	})

	t.Run("el género no participa de la búsqueda", func(t *testing.T) {
		assert.Empty(t, r.Search("masculino"))
	})

	t.Run("término vacío no devuelve nada", func(t *testing.T) {
		assert.Empty(t, r.Search(""))
		assert.Empty(t, r.Search("   "))
	})
}

func TestUserRepo_SuspenderYActivar(t *testing.T) {
	r := memory.NewUserRepository()
	u, err := r.Create("maria", entity.RoleSeller)
	require.NoError(t, err)
	require.True(t, u.IsActive())

	assert.True(t, r.Suspend(u.ID))
	assert.False(t, u.IsActive())

	assert.True(t, r.Activate(u.ID))
	assert.True(t, u.IsActive())

	assert.False(t, r.Suspend(99), "usuario inexistente")
}

func TestSaleRepo_InRangeInclusivo(t *testing.T) {
	r := memory.NewSaleRepository()
	day := func(d int) time.Time { return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC) }
	for _, d := range []int{5, 15, 25} {
		_, err := r.Create("producto", decimalFrom(t, "100"), day(d))
		require.NoError(t, err)
	}

	assert.Len(t, r.InRange(day(5), day(25)), 3, "extremos inclusive")
	assert.Len(t, r.InRange(day(6), day(24)), 1)
	assert.Empty(t, r.InRange(day(26), day(30)))
}
