package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Linear es un modelo lineal serializado en JSON. Sirve como baseline y para pruebas.
type Linear struct {
	Features  []string  `json:"features,omitempty"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func LoadLinear(path string) (*Linear, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read linear model %s: %w", path, err)
	}
	var m Linear
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("parse linear model %s: %w", path, err)
	}
	if len(m.Weights) == 0 {
		return nil, errors.New("linear model has no weights")
	}
	if len(m.Features) > 0 && len(m.Features) != len(m.Weights) {
		return nil, fmt.Errorf("%w: %d features, %d weights", ErrFeatureCount, len(m.Features), len(m.Weights))
	}
	return &m, nil
}

func (m *Linear) Predict(row []float64) (float64, error) {
	if err := checkWidth(row, len(m.Weights)); err != nil {
		return 0, err
	}
	y := m.Intercept
	for i, w := range m.Weights {
		y += w * row[i]
	}
	return y, nil
}

func (m *Linear) NumFeatures() int {
	return len(m.Weights)
}

func (m *Linear) FeatureNames() []string {
	out := make([]string, len(m.Features))
	copy(out, m.Features)
	return out
}
