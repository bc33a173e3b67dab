package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics descompone (NFD), elimina las marcas diacríticas y
// recompone, de modo que "Pérez" y "Perez" queden iguales.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeTerm(s string) string {
	out, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// containsFold informa si s contiene term como subcadena, ignorando
// mayúsculas y acentos. Un término vacío no coincide con nada.
func containsFold(s, term string) bool {
	if strings.TrimSpace(term) == "" {
		return false
	}
	return strings.Contains(normalizeTerm(s), normalizeTerm(term))
}
