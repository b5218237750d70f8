package features

import "github.com/matheus-soulza/simulador-enem/internal/domain"

// Row es una fila numérica alineada con el Schema; todo empieza en cero.
type Row struct {
	schema Schema
	values []float64
}

func NewRow(schema Schema) *Row {
	return &Row{
		schema: schema,
		values: make([]float64, schema.Len()),
	}
}

// Set escribe v en la columna canónica col. Devuelve false si col no pertenece al esquema.
func (r *Row) Set(col string, v float64) bool {
	i, ok := r.schema.Position(col)
	if !ok {
		return false
	}
	r.values[i] = v
	return true
}

func (r *Row) Get(col string) (float64, bool) {
	i, ok := r.schema.Position(col)
	if !ok {
		return 0, false
	}
	return r.values[i], true
}

// Values devuelve una copia del vector en el orden del esquema.
func (r *Row) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// Features empareja cada columna con su valor, en orden.
func (r *Row) Features() []domain.FeatureValue {
	out := make([]domain.FeatureValue, len(r.values))
	for i, name := range r.schema.names {
		out[i] = domain.FeatureValue{Name: name, Value: r.values[i]}
	}
	return out
}
