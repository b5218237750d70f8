package names

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// Suggester propone tokens parecidos cuando una columna no se encuentra.
type Suggester interface {
	Suggest(token string, candidates []string) []string
}

// NopSuggester desactiva las sugerencias.
type NopSuggester struct{}

func (NopSuggester) Suggest(string, []string) []string {
	return nil
}

// DifflibSuggester ordena candidatos por el ratio de Ratcliff/Obershelp,
// igual que get_close_matches de difflib.
type DifflibSuggester struct {
	Max    int
	Cutoff float64
}

// NewDifflibSuggester aplica los valores por defecto (3 candidatos, umbral 0.6)
// cuando los parámetros están fuera de rango.
func NewDifflibSuggester(max int, cutoff float64) DifflibSuggester {
	if max <= 0 {
		max = 3
	}
	if cutoff <= 0 || cutoff > 1 {
		cutoff = 0.6
	}
	return DifflibSuggester{Max: max, Cutoff: cutoff}
}

// NewSuggester devuelve NopSuggester si las sugerencias están apagadas.
func NewSuggester(enabled bool, max int, cutoff float64) Suggester {
	if !enabled {
		return NopSuggester{}
	}
	return NewDifflibSuggester(max, cutoff)
}

type scoredToken struct {
	score float64
	token string
}

func (s DifflibSuggester) Suggest(token string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	matcher := difflib.NewMatcher(nil, splitChars(token))

	var scored []scoredToken
	for _, cand := range candidates {
		matcher.SetSeq1(splitChars(cand))
		if matcher.RealQuickRatio() < s.Cutoff || matcher.QuickRatio() < s.Cutoff {
			continue
		}
		if ratio := matcher.Ratio(); ratio >= s.Cutoff {
			scored = append(scored, scoredToken{score: ratio, token: cand})
		}
	}

	// Empates por score: token descendente.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].token > scored[j].token
	})
	if len(scored) > s.Max {
		scored = scored[:s.Max]
	}

	out := make([]string, len(scored))
	for i, st := range scored {
		out[i] = st.token
	}
	return out
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
