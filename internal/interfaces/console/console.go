// Package console es el adaptador de interfaz del CRM: un bucle de
// comandos de chat sobre stdin que traduce texto a llamadas de la
// fachada y presenta los resultados. No contiene reglas de negocio; lo
// único propio es el parseo, un chequeo simple de rol para los comandos
// de administración y el renderizado.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-pro/internal/application/crm"
	"github.com/jhoicas/crm-pro/internal/domain"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/pkg/logger"
)

// Console bucle interactivo de comandos.
type Console struct {
	svc    *crm.Service
	log    *logger.Logger
	st     styles
	prompt string

	// operator es el usuario conectado con "conectar <login>"; los
	// comandos de administración lo exigen con rol administrador.
	operator *entity.User
}

// Options opciones de presentación de la consola.
type Options struct {
	Prompt string
	Color  bool
}

// New construye la consola. Cada sesión lleva un id de correlación en
// los campos del logger.
func New(svc *crm.Service, log *logger.Logger, opts Options) *Console {
	if opts.Prompt == "" {
		opts.Prompt = "crm> "
	}
	session := log.With().Str("sesion", uuid.New().String()).Logger()
	return &Console{
		svc:    svc,
		log:    logger.FromZerolog(session),
		st:     newStyles(opts.Color),
		prompt: opts.Prompt,
	}
}

// Run procesa comandos línea a línea hasta EOF o "salir".
func (c *Console) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, c.st.Title.Render("CRM — consola interactiva"))
	fmt.Fprintln(out, c.st.Dim.Render(`escriba "ayuda" para ver los comandos`))
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, c.prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "salir" {
			fmt.Fprintln(out, "hasta luego")
			return nil
		}
		fmt.Fprintln(out, c.Execute(line))
	}
	return scanner.Err()
}

// Execute ejecuta una línea de comando y devuelve el texto a presentar.
func (c *Console) Execute(line string) string {
	args := splitArgs(line)
	if len(args) == 0 {
		return ""
	}
	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return c.errorf("comando desconocido %q; escriba \"ayuda\"", name)
	}
	c.log.Debug().Str("comando", name).Int("args", len(args)-1).Msg("comando recibido")

	if cmd.adminOnly && (c.operator == nil || !c.operator.HasRole(entity.RoleAdministrator)) {
		return c.errorf("%q requiere un administrador conectado", name)
	}
	return cmd.run(c, args[1:])
}

// errorf renderiza un mensaje de error amistoso.
func (c *Console) errorf(format string, a ...any) string {
	return c.st.Err.Render(fmt.Sprintf(format, a...))
}

// renderErr traduce los errores de la fachada: los de validación se
// presentan amistosos, el resto tal cual.
func (c *Console) renderErr(err error) string {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.errorf("datos inválidos: %v", err)
	}
	return c.errorf("%v", err)
}

func (c *Console) helpText() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(c.st.Title.Render("Comandos") + "\n")
	for _, name := range names {
		cmd := commands[name]
		mark := "  "
		if cmd.adminOnly {
			mark = c.st.Dim.Render("* ")
		}
		fmt.Fprintf(&sb, "%s%s — %s\n", mark, c.st.Label.Render(cmd.usage), cmd.help)
	}
	sb.WriteString(c.st.Dim.Render("* requiere administrador conectado; salir termina la sesión") + "\n")
	return sb.String()
}

func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	return id, err == nil && id > 0
}
