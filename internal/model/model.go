// Package model carga el modelo entrenado y su lista de columnas.
package model

import (
	"errors"
	"fmt"
)

var (
	ErrFeatureCount     = errors.New("feature count mismatch")
	ErrUnsupportedModel = errors.New("unsupported model kind")
)

const (
	KindLightGBM = "lightgbm"
	KindLinear   = "linear"
)

// Predictor hace inferencia de una sola fila.
type Predictor interface {
	Predict(row []float64) (float64, error)
	NumFeatures() int
}

// FeatureNamer lo implementan los modelos que guardan sus nombres de columna.
type FeatureNamer interface {
	FeatureNames() []string
}

// LoadPredictor elige la implementación según kind.
func LoadPredictor(kind, path string) (Predictor, error) {
	switch kind {
	case KindLightGBM:
		return LoadLightGBM(path)
	case KindLinear:
		return LoadLinear(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, kind)
	}
}

func checkWidth(row []float64, want int) error {
	if len(row) != want {
		return fmt.Errorf("%w: got %d, model expects %d", ErrFeatureCount, len(row), want)
	}
	return nil
}
