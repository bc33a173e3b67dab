package crm_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pro/internal/domain"
)

func TestTotalSalesInRange_Escenario(t *testing.T) {
	svc := newService(t)
	day := func(d int) time.Time { return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC) }

	for _, s := range []struct {
		day    int
		amount int64
	}{{5, 100}, {15, 50}, {25, 200}} {
		_, err := svc.RegisterSale("producto", decimal.NewFromInt(s.amount), day(s.day))
		require.NoError(t, err)
	}

	total := svc.TotalSalesInRange(day(1), day(20))
	assert.True(t, total.Equal(decimal.NewFromInt(150)), "esperado 150, fue %s", total)

	t.Run("extremos inclusive", func(t *testing.T) {
		total := svc.TotalSalesInRange(day(5), day(25))
		assert.True(t, total.Equal(decimal.NewFromInt(350)), "esperado 350, fue %s", total)
	})

	t.Run("reporte de rango", func(t *testing.T) {
		rep := svc.SalesRangeReport(day(1), day(20))
		assert.Equal(t, 2, rep.Count)
		assert.True(t, rep.Total.Equal(decimal.NewFromInt(150)))
	})
}

func TestRegisterSale_Validacion(t *testing.T) {
	svc := newService(t)

	_, err := svc.RegisterSale("", decimal.NewFromInt(10), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.RegisterSale("licencia", decimal.NewFromInt(-5), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterClientSale_SecuenciaIndependiente(t *testing.T) {
	svc := newService(t)
	c := mustCreateClient(t, svc)

	// Dos ventas en el libro general consumen las identidades 1 y 2 de
	// su secuencia.
	ledger1, err := svc.RegisterSale("libro-a", decimal.NewFromInt(10), time.Now())
	require.NoError(t, err)
	ledger2, err := svc.RegisterSale("libro-b", decimal.NewFromInt(20), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, ledger1.ID)
	assert.Equal(t, 2, ledger2.ID)

	// Las ventas directas del cliente arrancan su propia secuencia en 1.
	cs1, err := svc.RegisterClientSale(c.ID, "directa-a", decimal.NewFromInt(30), time.Now())
	require.NoError(t, err)
	require.NotNil(t, cs1)
	cs2, err := svc.RegisterClientSale(c.ID, "directa-b", decimal.NewFromInt(40), time.Now())
	require.NoError(t, err)
	require.NotNil(t, cs2)
	assert.Equal(t, 1, cs1.ID)
	assert.Equal(t, 2, cs2.ID)

	assert.Len(t, c.Sales, 2)
	assert.True(t, c.TotalSales().Equal(decimal.NewFromInt(70)))
}

func TestRegisterClientSale_ClienteInexistenteEsNoOp(t *testing.T) {
	svc := newService(t)
	sale, err := svc.RegisterClientSale(99, "producto", decimal.NewFromInt(10), time.Now())
	assert.NoError(t, err, "no es error: no-op silencioso")
	assert.Nil(t, sale)
}

func TestRegisterClientSale_MontoInvalido(t *testing.T) {
	svc := newService(t)
	c := mustCreateClient(t, svc)
	_, err := svc.RegisterClientSale(c.ID, "producto", decimal.NewFromInt(-1), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, c.Sales)
}

func TestClientsByTotalSales(t *testing.T) {
	svc := newService(t)
	juan := mustCreateClient(t, svc)
	ana, err := svc.CreateClient("Ana", "García", "098", "ana@g.com", "Femenino", time.Time{})
	require.NoError(t, err)

	_, err = svc.RegisterClientSale(juan.ID, "licencia", decimal.NewFromInt(500), time.Now())
	require.NoError(t, err)
	_, err = svc.RegisterClientSale(ana.ID, "soporte", decimal.NewFromInt(50), time.Now())
	require.NoError(t, err)

	above := svc.ClientsByTotalSales(decimal.NewFromInt(100), true)
	require.Len(t, above, 1)
	assert.Equal(t, juan.ID, above[0].ID)

	below := svc.ClientsByTotalSales(decimal.NewFromInt(100), false)
	require.Len(t, below, 1)
	assert.Equal(t, ana.ID, below[0].ID)

	t.Run("el umbral exacto no entra en ningún caso", func(t *testing.T) {
		exact := svc.ClientsByTotalSales(decimal.NewFromInt(500), true)
		assert.Empty(t, exact)
	})
}
