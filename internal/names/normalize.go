// Package names resuelve nombres de columnas legibles contra los nombres
// reales que espera el modelo.
package names

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnumRun   = regexp.MustCompile(`[^a-z0-9]+`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// Normalize convierte un nombre arbitrario en un token [a-z0-9_]:
// descompone en NFKD, descarta todo rune no ASCII, pasa a minúsculas,
// reemplaza cada tramo no alfanumérico por "_" y recorta los "_" de los extremos.
//
//	Normalize("Instrução da mãe_ord") == "instrucao_da_mae_ord"
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// transform.Chain guarda estado: uno nuevo por llamada.
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isNonASCII)))
	folded, _, err := transform.String(fold, s)
	if err != nil {
		return ""
	}

	folded = strings.ToLower(folded)
	folded = nonAlnumRun.ReplaceAllString(folded, "_")
	folded = underscoreRun.ReplaceAllString(folded, "_")
	return strings.Trim(folded, "_")
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
