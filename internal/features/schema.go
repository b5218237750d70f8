// Package features define el esquema del modelo y codifica las respuestas
// en el vector de entrada.
package features

import (
	"errors"
	"fmt"
)

var ErrEmptySchema = errors.New("feature schema is empty")

// Schema es la secuencia ordenada de columnas que espera el modelo. Inmutable.
type Schema struct {
	names []string
	pos   map[string]int
}

func NewSchema(names []string) (Schema, error) {
	if len(names) == 0 {
		return Schema{}, ErrEmptySchema
	}
	s := Schema{
		names: make([]string, len(names)),
		pos:   make(map[string]int, len(names)),
	}
	copy(s.names, names)
	for i, n := range s.names {
		if _, dup := s.pos[n]; dup {
			return Schema{}, fmt.Errorf("duplicate feature %q", n)
		}
		s.pos[n] = i
	}
	return s, nil
}

// Names devuelve una copia de las columnas en orden.
func (s Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s Schema) Len() int {
	return len(s.names)
}

// Position devuelve el índice de la columna canónica name.
func (s Schema) Position(name string) (int, bool) {
	i, ok := s.pos[name]
	return i, ok
}
