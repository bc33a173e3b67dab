package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// command es una entrada del despachador de la consola.
type command struct {
	usage     string
	help      string
	adminOnly bool
	run       func(c *Console, args []string) string
}

var commands map[string]command

// El registro vive en init para que "ayuda" pueda recorrer la tabla sin
// ciclo de inicialización.
func init() {
	commands = map[string]command{
		"ayuda": {
			usage: "ayuda",
			help:  "muestra esta lista",
			run:   func(c *Console, _ []string) string { return c.helpText() },
		},
		"conectar": {
			usage: "conectar <login>",
			help:  "selecciona el operador de la sesión",
			run:   cmdConnect,
		},
		"crear-usuario": {
			usage:     "crear-usuario <login> <rol[,rol]>",
			help:      "alta de usuario (roles: vendedor, administrador)",
			adminOnly: true,
			run:       cmdCreateUser,
		},
		"usuarios": {
			usage:     "usuarios",
			help:      "lista los usuarios",
			adminOnly: true,
			run:       cmdListUsers,
		},
		"suspender-usuario": {
			usage:     "suspender-usuario <id>",
			help:      "suspende al usuario",
			adminOnly: true,
			run:       cmdSuspendUser,
		},
		"activar-usuario": {
			usage:     "activar-usuario <id>",
			help:      "reactiva al usuario",
			adminOnly: true,
			run:       cmdActivateUser,
		},
		"eliminar-usuario": {
			usage:     "eliminar-usuario <id>",
			help:      "elimina al usuario",
			adminOnly: true,
			run:       cmdDeleteUser,
		},
		"crear-cliente": {
			usage: "crear-cliente <nombre> <apellido> <teléfono> <email> [género] [nacimiento]",
			help:  "alta de cliente",
			run:   cmdCreateClient,
		},
		"cliente": {
			usage: "cliente <id>",
			help:  "ficha del cliente",
			run:   cmdShowClient,
		},
		"buscar": {
			usage: "buscar <término>",
			help:  "busca clientes por nombre, apellido, teléfono o email",
			run:   cmdSearch,
		},
		"datos-adicionales": {
			usage: "datos-adicionales <id> <género> <nacimiento>",
			help:  "actualiza solo género y fecha de nacimiento",
			run:   cmdAdditionalData,
		},
		"eliminar-cliente": {
			usage: "eliminar-cliente <id>",
			help:  "elimina al cliente con su historial",
			run:   cmdDeleteClient,
		},
		"asignar-vendedor": {
			usage: "asignar-vendedor <clienteId> <vendedorId>",
			help:  "asigna un vendedor activo al cliente",
			run:   cmdAssignSeller,
		},
		"registrar-llamada": {
			usage: "registrar-llamada <clienteId> <entrante|saliente> <tema> [fecha]",
			help:  "registra una llamada",
			run:   cmdRegisterCall,
		},
		"registrar-reunion": {
			usage: "registrar-reunion <clienteId> <lugar> <tema> [fecha]",
			help:  "registra una reunión",
			run:   cmdRegisterMeeting,
		},
		"registrar-mensaje": {
			usage: "registrar-mensaje <clienteId> <remitente> <destinatario> <tema> [fecha]",
			help:  "registra un mensaje",
			run:   cmdRegisterMessage,
		},
		"registrar-correo": {
			usage: "registrar-correo <clienteId> <remitente> <destinatario> <asunto> <tema> [fecha]",
			help:  "registra un correo",
			run:   cmdRegisterEmail,
		},
		"registrar-cotizacion": {
			usage: "registrar-cotizacion <clienteId> <monto> <tema> <detalle> [fecha]",
			help:  "registra una cotización",
			run:   cmdRegisterQuote,
		},
		"interacciones": {
			usage: "interacciones <clienteId> [tipo] [desde]",
			help:  "historial del cliente, filtrable por tipo y fecha",
			run:   cmdListInteractions,
		},
		"nota": {
			usage: "nota <clienteId> <índice> <texto>",
			help:  "adjunta una nota a la interacción",
			run:   cmdAttachNote,
		},
		"crear-etiqueta": {
			usage: "crear-etiqueta <nombre>",
			help:  "alta de etiqueta global",
			run:   cmdCreateTag,
		},
		"etiquetas": {
			usage: "etiquetas",
			help:  "lista las etiquetas",
			run:   cmdListTags,
		},
		"eliminar-etiqueta": {
			usage:     "eliminar-etiqueta <id>",
			help:      "elimina la etiqueta del catálogo",
			adminOnly: true,
			run:       cmdDeleteTag,
		},
		"etiquetar": {
			usage: "etiquetar <clienteId> <etiquetaId>",
			help:  "agrega la etiqueta al cliente (idempotente)",
			run:   cmdAttachTag,
		},
		"desetiquetar": {
			usage: "desetiquetar <clienteId> <etiquetaId>",
			help:  "quita la etiqueta del cliente",
			run:   cmdDetachTag,
		},
		"venta": {
			usage: "venta <producto> <monto> [fecha]",
			help:  "registra una venta en el libro general",
			run:   cmdRegisterSale,
		},
		"venta-cliente": {
			usage: "venta-cliente <clienteId> <producto> <monto> [fecha]",
			help:  "registra una venta directa del cliente",
			run:   cmdRegisterClientSale,
		},
		"reporte-ventas": {
			usage: "reporte-ventas <desde> <hasta>",
			help:  "total del libro general en el rango (inclusive)",
			run:   cmdSalesReport,
		},
		"clientes-por-ventas": {
			usage: "clientes-por-ventas <umbral> <mayor|menor>",
			help:  "clientes por total vendido sobre o bajo el umbral",
			run:   cmdClientsBySales,
		},
		"inactivos": {
			usage: "inactivos <días>",
			help:  "clientes sin actividad en los últimos días",
			run:   cmdInactive,
		},
		"sin-respuesta": {
			usage: "sin-respuesta",
			help:  "clientes cuya última interacción es una llamada entrante",
			run:   cmdWithoutResponse,
		},
		"dashboard": {
			usage: "dashboard",
			help:  "resumen general",
			run:   cmdDashboard,
		},
	}
}

func cmdConnect(c *Console, args []string) string {
	if len(args) != 1 {
		return c.errorf("uso: conectar <login>")
	}
	u, ok := c.svc.FindUserByLogin(args[0])
	if !ok {
		return c.errorf("usuario %q no encontrado", args[0])
	}
	if !u.IsActive() {
		return c.errorf("usuario %q suspendido", args[0])
	}
	c.operator = u
	return fmt.Sprintf("conectado como %s (%s)", u.Login, strings.Join(u.Roles, ", "))
}

func cmdCreateUser(c *Console, args []string) string {
	if len(args) != 2 {
		return c.errorf("uso: crear-usuario <login> <rol[,rol]>")
	}
	u, err := c.svc.CreateUser(args[0], strings.Split(args[1], ",")...)
	if err != nil {
		return c.renderErr(err)
	}
	return fmt.Sprintf("usuario #%d %s creado", u.ID, u.Login)
}

func cmdListUsers(c *Console, _ []string) string {
	users := c.svc.ListUsers()
	if len(users) == 0 {
		return "sin usuarios"
	}
	var sb strings.Builder
	sb.WriteString(c.st.Title.Render("Usuarios") + "\n")
	for _, u := range users {
		fmt.Fprintf(&sb, "  #%d %s [%s] %s\n", u.ID, u.Login, strings.Join(u.Roles, ","), u.Status)
	}
	return sb.String()
}

func cmdSuspendUser(c *Console, args []string) string {
	id, ok := parseIDArg(args)
	if !ok {
		return c.errorf("uso: suspender-usuario <id>")
	}
	if !c.svc.SuspendUser(id) {
		return c.errorf("usuario %d no encontrado", id)
	}
	return fmt.Sprintf("usuario %d suspendido", id)
}

func cmdActivateUser(c *Console, args []string) string {
	id, ok := parseIDArg(args)
	if !ok {
		return c.errorf("uso: activar-usuario <id>")
	}
	if !c.svc.ActivateUser(id) {
		return c.errorf("usuario %d no encontrado", id)
	}
	return fmt.Sprintf("usuario %d activo", id)
}

func cmdDeleteUser(c *Console, args []string) string {
	id, ok := parseIDArg(args)
	if !ok {
		return c.errorf("uso: eliminar-usuario <id>")
	}
	c.svc.DeleteUser(id)
	return fmt.Sprintf("usuario %d eliminado", id)
}

func cmdCreateClient(c *Console, args []string) string {
	birth, rest := popDate(args)
	if len(rest) < 4 || len(rest) > 5 {
		return c.errorf("uso: crear-cliente <nombre> <apellido> <teléfono> <email> [género] [nacimiento]")
	}
	gender := ""
	if len(rest) == 5 {
		gender = rest[4]
	}
	cl, err := c.svc.CreateClient(rest[0], rest[1], rest[2], rest[3], gender, birth)
	if err != nil {
		return c.renderErr(err)
	}
	return fmt.Sprintf("cliente #%d %s creado", cl.ID, cl.FullName())
}

func cmdShowClient(c *Console, args []string) string {
	id, ok := parseIDArg(args)
	if !ok {
		return c.errorf("uso: cliente <id>")
	}
	cl, ok := c.svc.FindClient(id)
	if !ok {
		return c.errorf("cliente %d no encontrado", id)
	}
	return c.renderClient(cl)
}

func cmdSearch(c *Console, args []string) string {
	if len(args) == 0 {
		return c.errorf("uso: buscar <término>")
	}
	matches := c.svc.SearchClients(strings.Join(args, " "))
	if len(matches) == 0 {
		return "sin coincidencias"
	}
	var sb strings.Builder
	for _, cl := range matches {
		fmt.Fprintf(&sb, "  #%d %s — %s %s\n", cl.ID, cl.FullName(), cl.Phone, cl.Email)
	}
	return sb.String()
}

func cmdAdditionalData(c *Console, args []string) string {
	if len(args) < 3 {
		return c.errorf("uso: datos-adicionales <id> <género> <nacimiento>")
	}
	id, ok := parseID(args[0])
	if !ok {
		return c.errorf("uso: datos-adicionales <id> <género> <nacimiento>")
	}
	birth, rest := popDate(args[1:])
	if birth.IsZero() || len(rest) != 1 {
		return c.errorf("uso: datos-adicionales <id> <género> <nacimiento>")
	}
	if !c.svc.RegisterAdditionalData(id, rest[0], birth) {
		return c.errorf("cliente %d no encontrado", id)
	}
	return fmt.Sprintf("datos adicionales del cliente %d actualizados", id)
}

func cmdDeleteClient(c *Console, args []string) string {
	id, ok := parseIDArg(args)
	if !ok {
		return c.errorf("uso: eliminar-cliente <id>")
	}
	c.svc.DeleteClient(id)
	return fmt.Sprintf("cliente %d eliminado", id)
}

func cmdAssignSeller(c *Console, args []string) string {
	if len(args) != 2 {
		return c.errorf("uso: asignar-vendedor <clienteId> <vendedorId>")
	}
	clientID, ok1 := parseID(args[0])
	sellerID, ok2 := parseID(args[1])
	if !ok1 || !ok2 {
		return c.errorf("uso: asignar-vendedor <clienteId> <vendedorId>")
	}
	// La fachada es fail-silent: reportamos según el estado observado.
	if !c.svc.AssignSeller(clientID, sellerID) {
		return c.errorf("no se asignó: verifique cliente, rol vendedor y estado activo")
	}
	return fmt.Sprintf("vendedor %d asignado al cliente %d", sellerID, clientID)
}

func cmdRegisterCall(c *Console, args []string) string {
	date, rest := popDate(args)
	if len(rest) != 3 {
		return c.errorf("uso: registrar-llamada <clienteId> <entrante|saliente> <tema> [fecha]")
	}
	id, ok := parseID(rest[0])
	if !ok {
		return c.errorf("uso: registrar-llamada <clienteId> <entrante|saliente> <tema> [fecha]")
	}
	if !c.svc.RegisterCall(id, date, rest[2], rest[1]) {
		return c.errorf("cliente %d no encontrado", id)
	}
	return "llamada registrada"
}

func cmdRegisterMeeting(c *Console, args []string) string {
	date, rest := popDate(args)
	if len(rest) != 3 {
		return c.errorf("uso: registrar-reunion <clienteId> <lugar> <tema> [fecha]")
	}
	id, ok := parseID(rest[0])
	if !ok {
		return c.errorf("uso: registrar-reunion <clienteId> <lugar> <tema> [fecha]")
	}
	if !c.svc.RegisterMeeting(id, date, rest[2], rest[1]) {
		return c.errorf("cliente %d no encontrado", id)
	}
	return "reunión registrada"
}

func cmdRegisterMessage(c *Console, args []string) string {
	date, rest := popDate(args)
	if len(rest) != 4 {
		return c.errorf("uso: registrar-mensaje <clienteId> <remitente> <destinatario> <tema> [fecha]")
	}
	id, ok := parseID(rest[0])
	if !ok {
		return c.errorf("uso: registrar-mensaje <clienteId> <remitente> <destinatario> <tema> [fecha]")
	}
	if !c.svc.RegisterMessage(id, date, rest[3], rest[1], rest[2]) {
		return c.errorf("cliente %d no encontrado", id)
	}
	return "mensaje registrado"
}

func cmdRegisterEmail(c *Console, args []string) string {
	date, rest := popDate(args)
	if len(rest) != 5 {
		return c.errorf("uso: registrar-correo <clienteId> <remitente> <destinatario> <asunto> <tema> [fecha]")
	}
	id, ok := parseID(rest[0])
	if !ok {
		return c.errorf("uso: registrar-correo <clienteId> <remitente> <destinatario> <asunto> <tema> [fecha]")
	}
	if !c.svc.RegisterEmail(id, date, rest[4], rest[1], rest[2], rest[3]) {
		return c.errorf("cliente %d no encontrado", id)
	}
	return "correo registrado"
}

func cmdRegisterQuote(c *Console, args []string) string {
	date, rest := popDate(args)
	if len(rest) != 4 {
		return c.errorf("uso: registrar-cotizacion <clienteId> <monto> <tema> <detalle> [fecha]")
	}
	id, ok := parseID(rest[0])
	if !ok {
		return c.errorf("uso: registrar-cotizacion <clienteId> <monto> <tema> <detalle> [fecha]")
	}
	amount, err := decimal.NewFromString(rest[1])
	if err != nil {
		return c.errorf("monto inválido %q", rest[1])
	}
	if !c.svc.RegisterQuote(id, date, rest[2], amount, rest[3]) {
		return c.errorf("cliente %d no encontrado", id)
	}
	return "cotización registrada"
}

func cmdListInteractions(c *Console, args []string) string {
	if len(args) == 0 {
		return c.errorf("uso: interacciones <clienteId> [tipo] [desde]")
	}
	id, ok := parseID(args[0])
	if !ok {
		return c.errorf("uso: interacciones <clienteId> [tipo] [desde]")
	}
	if _, found := c.svc.FindClient(id); !found {
		return c.errorf("cliente %d no encontrado", id)
	}
	since, rest := popDate(args[1:])
	kind := ""
	if len(rest) == 1 {
		kind = rest[0]
	} else if len(rest) > 1 {
		return c.errorf("uso: interacciones <clienteId> [tipo] [desde]")
	}
	var list []entity.Interaction
	if since.IsZero() {
		list = c.svc.ListInteractions(id, kind, nil)
	} else {
		list = c.svc.ListInteractions(id, kind, &since)
	}
	if len(list) == 0 {
		return "sin interacciones"
	}
	var sb strings.Builder
	for i, it := range list {
		sb.WriteString(c.renderInteraction(i, it) + "\n")
	}
	return sb.String()
}

func cmdAttachNote(c *Console, args []string) string {
	if len(args) < 3 {
		return c.errorf("uso: nota <clienteId> <índice> <texto>")
	}
	id, ok1 := parseID(args[0])
	index, err := strconv.Atoi(args[1])
	if !ok1 || err != nil {
		return c.errorf("uso: nota <clienteId> <índice> <texto>")
	}
	if !c.svc.AttachNote(id, index, strings.Join(args[2:], " ")) {
		return c.errorf("cliente %d o interacción %d no encontrados", id, index)
	}
	return "nota adjuntada"
}

func cmdCreateTag(c *Console, args []string) string {
	if len(args) == 0 {
		return c.errorf("uso: crear-etiqueta <nombre>")
	}
	t := c.svc.CreateTag(strings.Join(args, " "))
	return fmt.Sprintf("etiqueta #%d %q creada", t.ID, t.Name)
}

func cmdListTags(c *Console, _ []string) string {
	tags := c.svc.ListTags()
	if len(tags) == 0 {
		return "sin etiquetas"
	}
	var sb strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&sb, "  #%d %s\n", t.ID, t.Name)
	}
	return sb.String()
}

func cmdDeleteTag(c *Console, args []string) string {
	id, ok := parseIDArg(args)
	if !ok {
		return c.errorf("uso: eliminar-etiqueta <id>")
	}
	c.svc.DeleteTag(id)
	return fmt.Sprintf("etiqueta %d eliminada", id)
}

func cmdAttachTag(c *Console, args []string) string {
	if len(args) != 2 {
		return c.errorf("uso: etiquetar <clienteId> <etiquetaId>")
	}
	clientID, ok1 := parseID(args[0])
	tagID, ok2 := parseID(args[1])
	if !ok1 || !ok2 {
		return c.errorf("uso: etiquetar <clienteId> <etiquetaId>")
	}
	if !c.svc.AttachTag(clientID, tagID) {
		return c.errorf("cliente %d o etiqueta %d no encontrados", clientID, tagID)
	}
	return "etiqueta agregada"
}

func cmdDetachTag(c *Console, args []string) string {
	if len(args) != 2 {
		return c.errorf("uso: desetiquetar <clienteId> <etiquetaId>")
	}
	clientID, ok1 := parseID(args[0])
	tagID, ok2 := parseID(args[1])
	if !ok1 || !ok2 {
		return c.errorf("uso: desetiquetar <clienteId> <etiquetaId>")
	}
	if !c.svc.DetachTag(clientID, tagID) {
		return c.errorf("cliente %d no encontrado", clientID)
	}
	return "etiqueta quitada"
}

func cmdRegisterSale(c *Console, args []string) string {
	date, rest := popDate(args)
	if len(rest) != 2 {
		return c.errorf("uso: venta <producto> <monto> [fecha]")
	}
	amount, err := decimal.NewFromString(rest[1])
	if err != nil {
		return c.errorf("monto inválido %q", rest[1])
	}
	sale, err := c.svc.RegisterSale(rest[0], amount, date)
	if err != nil {
		return c.renderErr(err)
	}
	return fmt.Sprintf("venta #%d registrada por $%s", sale.ID, sale.Amount)
}

func cmdRegisterClientSale(c *Console, args []string) string {
	date, rest := popDate(args)
	if len(rest) != 3 {
		return c.errorf("uso: venta-cliente <clienteId> <producto> <monto> [fecha]")
	}
	id, ok := parseID(rest[0])
	if !ok {
		return c.errorf("uso: venta-cliente <clienteId> <producto> <monto> [fecha]")
	}
	amount, err := decimal.NewFromString(rest[2])
	if err != nil {
		return c.errorf("monto inválido %q", rest[2])
	}
	sale, err := c.svc.RegisterClientSale(id, rest[1], amount, date)
	if err != nil {
		return c.renderErr(err)
	}
	if sale == nil {
		return c.errorf("cliente %d no encontrado", id)
	}
	return fmt.Sprintf("venta #%d del cliente %d registrada por $%s", sale.ID, id, sale.Amount)
}

func cmdSalesReport(c *Console, args []string) string {
	if len(args) != 2 {
		return c.errorf("uso: reporte-ventas <desde> <hasta>")
	}
	start, ok1 := parseDate(args[0])
	end, ok2 := parseDate(args[1])
	if !ok1 || !ok2 {
		return c.errorf("fechas inválidas; formato 2006-01-02")
	}
	rep := c.svc.SalesRangeReport(start, end)
	return fmt.Sprintf("%s %s a %s: %d ventas, total $%s",
		c.st.Label.Render("Ventas"), formatDate(rep.Start), formatDate(rep.End), rep.Count, rep.Total)
}

func cmdClientsBySales(c *Console, args []string) string {
	if len(args) != 2 {
		return c.errorf("uso: clientes-por-ventas <umbral> <mayor|menor>")
	}
	threshold, err := decimal.NewFromString(args[0])
	if err != nil {
		return c.errorf("umbral inválido %q", args[0])
	}
	var above bool
	switch strings.ToLower(args[1]) {
	case "mayor":
		above = true
	case "menor":
		above = false
	default:
		return c.errorf("uso: clientes-por-ventas <umbral> <mayor|menor>")
	}
	clients := c.svc.ClientsByTotalSales(threshold, above)
	if len(clients) == 0 {
		return "sin clientes en ese rango"
	}
	var sb strings.Builder
	for _, cl := range clients {
		fmt.Fprintf(&sb, "  #%d %s — $%s\n", cl.ID, cl.FullName(), cl.TotalSales())
	}
	return sb.String()
}

func cmdInactive(c *Console, args []string) string {
	if len(args) != 1 {
		return c.errorf("uso: inactivos <días>")
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 {
		return c.errorf("uso: inactivos <días>")
	}
	clients := c.svc.InactiveClients(days)
	if len(clients) == 0 {
		return "sin clientes inactivos"
	}
	var sb strings.Builder
	for _, cl := range clients {
		fmt.Fprintf(&sb, "  #%d %s — último contacto: %s\n", cl.ID, cl.FullName(), formatDate(cl.LatestInteractionDate()))
	}
	return sb.String()
}

func cmdWithoutResponse(c *Console, _ []string) string {
	clients := c.svc.ClientsWithoutResponse()
	if len(clients) == 0 {
		return "sin llamadas pendientes de devolver"
	}
	var sb strings.Builder
	for _, cl := range clients {
		fmt.Fprintf(&sb, "  #%d %s — %s llamó el %s\n", cl.ID, cl.FullName(), cl.Name, formatDate(cl.LatestInteractionDate()))
	}
	return sb.String()
}

func cmdDashboard(c *Console, _ []string) string {
	return c.renderDashboard(c.svc.DashboardSummary())
}

// parseIDArg valida la forma "<comando> <id>" de un solo argumento.
func parseIDArg(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	return parseID(args[0])
}
