package features

import (
	"sort"

	"github.com/matheus-soulza/simulador-enem/internal/names"
)

// Diagnostics acumula las columnas que no se pudieron resolver en una codificación.
type Diagnostics struct {
	Missing     []string
	Suggestions map[string][]string
}

func (d *Diagnostics) record(res names.Resolution) {
	for _, m := range d.Missing {
		if m == res.Name {
			return
		}
	}
	d.Missing = append(d.Missing, res.Name)
	if len(res.Suggestions) > 0 {
		if d.Suggestions == nil {
			d.Suggestions = make(map[string][]string)
		}
		d.Suggestions[res.Name] = res.Suggestions
	}
}

func (d Diagnostics) HasMissing() bool {
	return len(d.Missing) > 0
}

// SortedMissing devuelve las columnas faltantes ordenadas, para mostrar.
func (d Diagnostics) SortedMissing() []string {
	out := make([]string, len(d.Missing))
	copy(out, d.Missing)
	sort.Strings(out)
	return out
}
