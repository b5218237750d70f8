package names

import (
	"errors"
	"fmt"
)

// ErrNameCollision indica dos columnas del esquema con el mismo token normalizado.
var ErrNameCollision = errors.New("column names collide after normalization")

// Index mapea tokens normalizados al nombre canónico de la columna.
type Index struct {
	byToken map[string]string
	tokens  []string
}

// NewIndex construye el índice a partir de las columnas del modelo, en orden.
func NewIndex(columns []string) (*Index, error) {
	idx := &Index{
		byToken: make(map[string]string, len(columns)),
		tokens:  make([]string, 0, len(columns)),
	}
	for _, col := range columns {
		token := Normalize(col)
		if prev, ok := idx.byToken[token]; ok {
			return nil, fmt.Errorf("%w: %q and %q -> %q", ErrNameCollision, prev, col, token)
		}
		idx.byToken[token] = col
		idx.tokens = append(idx.tokens, token)
	}
	return idx, nil
}

// Lookup normaliza name y devuelve la columna canónica si existe.
func (i *Index) Lookup(name string) (string, bool) {
	col, ok := i.byToken[Normalize(name)]
	return col, ok
}

// Canonical devuelve la columna para un token ya normalizado.
func (i *Index) Canonical(token string) (string, bool) {
	col, ok := i.byToken[token]
	return col, ok
}

// Tokens devuelve una copia de los tokens en el orden del esquema.
func (i *Index) Tokens() []string {
	out := make([]string, len(i.tokens))
	copy(out, i.tokens)
	return out
}

func (i *Index) Len() int {
	return len(i.tokens)
}
