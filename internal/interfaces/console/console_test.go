package console_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pro/internal/application/crm"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/infrastructure/memory"
	"github.com/jhoicas/crm-pro/internal/interfaces/console"
	"github.com/jhoicas/crm-pro/pkg/logger"
)

func newConsole(t *testing.T) (*console.Console, *crm.Service) {
	t.Helper()
	svc := crm.NewService(
		memory.NewClientRepository(),
		memory.NewUserRepository(),
		memory.NewTagRepository(),
		memory.NewSaleRepository(),
		logger.NewNop(),
	)
	return console.New(svc, logger.NewNop(), console.Options{}), svc
}

// connectAdmin da de alta un administrador y lo conecta como operador.
func connectAdmin(t *testing.T, ui *console.Console, svc *crm.Service) {
	t.Helper()
	_, err := svc.CreateUser("admin", entity.RoleAdministrator)
	require.NoError(t, err)
	out := ui.Execute("conectar admin")
	require.Contains(t, out, "conectado como admin")
}

func TestExecute_ComandoDesconocido(t *testing.T) {
	ui, _ := newConsole(t)
	out := ui.Execute("inventario")
	assert.Contains(t, out, "comando desconocido")
}

func TestExecute_FlujoCliente(t *testing.T) {
	ui, svc := newConsole(t)

	out := ui.Execute(`crear-cliente Juan Perez 099123456 juan@perez.com Masculino 1990-05-15`)
	assert.Contains(t, out, "cliente #1 Juan Perez creado")

	c, ok := svc.FindClient(1)
	require.True(t, ok)
	assert.Equal(t, entity.GenderMasculine, c.Gender)
	assert.Equal(t, 1990, c.BirthDate.Year())

	out = ui.Execute("cliente 1")
	assert.Contains(t, out, "Juan Perez")

	out = ui.Execute("buscar perez")
	assert.Contains(t, out, "#1 Juan Perez", "la búsqueda ignora tildes")

	out = ui.Execute("cliente 99")
	assert.Contains(t, out, "no encontrado")
}

func TestExecute_ValidacionAmistosa(t *testing.T) {
	ui, _ := newConsole(t)
	out := ui.Execute(`crear-cliente "" Perez 099 p@p.com`)
	assert.Contains(t, out, "datos inválidos")
}

func TestExecute_Interacciones(t *testing.T) {
	ui, _ := newConsole(t)
	require.Contains(t, ui.Execute("crear-cliente Juan Perez 099 j@p.com"), "creado")

	out := ui.Execute(`registrar-llamada 1 entrante "consulta de precios" 2025-10-05 14:30`)
	assert.Contains(t, out, "llamada registrada")
	out = ui.Execute(`registrar-reunion 1 "sala norte" demo 2025-10-06`)
	assert.Contains(t, out, "reunión registrada")

	out = ui.Execute("interacciones 1")
	assert.Contains(t, out, "consulta de precios")
	assert.Contains(t, out, "demo")

	out = ui.Execute("interacciones 1 llamada")
	assert.Contains(t, out, "consulta de precios")
	assert.NotContains(t, out, "demo")

	out = ui.Execute(`nota 1 0 "devolver mañana"`)
	assert.Contains(t, out, "nota adjuntada")

	out = ui.Execute("nota 1 9 texto")
	assert.Contains(t, out, "no encontrados")

	out = ui.Execute("sin-respuesta")
	assert.NotContains(t, out, "#1", "la última interacción es la reunión, no la llamada entrante")
}

func TestExecute_ComandosDeAdministracion(t *testing.T) {
	ui, svc := newConsole(t)

	out := ui.Execute("crear-usuario maria vendedor")
	assert.Contains(t, out, "requiere un administrador conectado")

	connectAdmin(t, ui, svc)

	out = ui.Execute("crear-usuario maria vendedor")
	assert.Contains(t, out, "creado")

	out = ui.Execute("usuarios")
	assert.Contains(t, out, "maria")

	out = ui.Execute("suspender-usuario 2")
	assert.Contains(t, out, "suspendido")

	t.Run("un vendedor no alcanza para administrar", func(t *testing.T) {
		require.Contains(t, ui.Execute("activar-usuario 2"), "activo")
		require.Contains(t, ui.Execute("conectar maria"), "conectado como maria")
		out := ui.Execute("eliminar-usuario 2")
		assert.Contains(t, out, "requiere un administrador conectado")
	})
}

func TestExecute_ConectarSuspendido(t *testing.T) {
	ui, svc := newConsole(t)
	u, err := svc.CreateUser("maria", entity.RoleSeller)
	require.NoError(t, err)
	require.True(t, svc.SuspendUser(u.ID))

	out := ui.Execute("conectar maria")
	assert.Contains(t, out, "suspendido")
}

func TestExecute_VentasYReporte(t *testing.T) {
	ui, _ := newConsole(t)

	require.Contains(t, ui.Execute("venta licencia 100 2025-10-05"), "venta #1 registrada")
	require.Contains(t, ui.Execute("venta soporte 50 2025-10-15"), "venta #2 registrada")
	require.Contains(t, ui.Execute("venta consultoria 200 2025-10-25"), "venta #3 registrada")

	out := ui.Execute("reporte-ventas 2025-10-01 2025-10-20")
	assert.Contains(t, out, "2 ventas")
	assert.Contains(t, out, "$150")

	out = ui.Execute("venta licencia abc")
	assert.Contains(t, out, "monto inválido")
}

func TestExecute_Etiquetas(t *testing.T) {
	ui, _ := newConsole(t)
	require.Contains(t, ui.Execute("crear-cliente Juan Perez 099 j@p.com"), "creado")
	require.Contains(t, ui.Execute("crear-etiqueta VIP"), `etiqueta #1 "VIP" creada`)

	assert.Contains(t, ui.Execute("etiquetar 1 1"), "etiqueta agregada")
	assert.Contains(t, ui.Execute("etiquetar 1 9"), "no encontrados")
	assert.Contains(t, ui.Execute("desetiquetar 1 1"), "etiqueta quitada")
}

func TestRun_SalirTerminaLaSesion(t *testing.T) {
	ui, _ := newConsole(t)
	in := strings.NewReader("crear-cliente Juan Perez 099 j@p.com\nsalir\n")
	var out strings.Builder

	err := ui.Run(in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cliente #1 Juan Perez creado")
	assert.Contains(t, out.String(), "hasta luego")
}
