package names

// Resolution es el resultado de resolver un nombre lógico.
type Resolution struct {
	Name        string
	Canonical   string
	Found       bool
	Suggestions []string
}

// Resolver busca columnas en el Index y pide sugerencias cuando no las encuentra.
// No acumula estado: el llamador decide qué hacer con cada Resolution.
type Resolver struct {
	index     *Index
	suggester Suggester
}

func NewResolver(index *Index, suggester Suggester) *Resolver {
	if suggester == nil {
		suggester = NopSuggester{}
	}
	return &Resolver{index: index, suggester: suggester}
}

// Resolve devuelve la columna canónica de name o, si no existe, las columnas
// canónicas más parecidas.
func (r *Resolver) Resolve(name string) Resolution {
	token := Normalize(name)
	if col, ok := r.index.Canonical(token); ok {
		return Resolution{Name: name, Canonical: col, Found: true}
	}

	res := Resolution{Name: name}
	for _, t := range r.suggester.Suggest(token, r.index.tokens) {
		if col, ok := r.index.Canonical(t); ok {
			res.Suggestions = append(res.Suggestions, col)
		}
	}
	return res
}
