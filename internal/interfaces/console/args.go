package console

import (
	"strings"
	"time"
)

// Formatos de fecha aceptados en los comandos.
var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate intenta los formatos aceptados en orden.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// popDate consume la fecha opcional al final de los argumentos. Una
// fecha con hora llega en dos tokens ("2026-03-01 15:04"); se prueba
// primero la combinación de los dos últimos.
func popDate(args []string) (time.Time, []string) {
	if n := len(args); n >= 2 {
		if t, ok := parseDate(args[n-2] + " " + args[n-1]); ok {
			return t, args[:n-2]
		}
	}
	if n := len(args); n >= 1 {
		if t, ok := parseDate(args[n-1]); ok {
			return t, args[:n-1]
		}
	}
	return time.Time{}, args
}

// splitArgs separa la línea en tokens respetando comillas dobles:
//
//	registrar-reunion 1 "sala norte" "revisión de contrato"
func splitArgs(line string) []string {
	var args []string
	var sb strings.Builder
	inQuotes := false
	flush := func() {
		if sb.Len() > 0 {
			args = append(args, sb.String())
			sb.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			if inQuotes {
				// Cierre de comillas: el token puede ser vacío a propósito.
				args = append(args, sb.String())
				sb.Reset()
			}
			inQuotes = !inQuotes
		case !inQuotes && (r == ' ' || r == '\t'):
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()
	return args
}
