package model

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dmitryikh/leaves"
)

// LightGBM envuelve un modelo LightGBM en formato texto (booster.save_model).
type LightGBM struct {
	ensemble *leaves.Ensemble
	names    []string
}

func LoadLightGBM(path string) (*LightGBM, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("load lightgbm model %s: %w", path, err)
	}
	names, err := readLightGBMFeatureNames(path)
	if err != nil {
		return nil, err
	}
	return &LightGBM{ensemble: ensemble, names: names}, nil
}

func (m *LightGBM) Predict(row []float64) (float64, error) {
	if err := checkWidth(row, m.ensemble.NFeatures()); err != nil {
		return 0, err
	}
	// nEstimators=0 usa todos los árboles.
	return m.ensemble.PredictSingle(row, 0), nil
}

func (m *LightGBM) NumFeatures() int {
	return m.ensemble.NFeatures()
}

func (m *LightGBM) FeatureNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// readLightGBMFeatureNames lee la línea feature_names= del encabezado.
// Devuelve nil sin error si el archivo no la tiene.
func readLightGBMFeatureNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lightgbm model %s: %w", path, err)
	}
	defer f.Close()

	const prefix = "feature_names="
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, prefix) {
			return strings.Fields(strings.TrimPrefix(line, prefix)), nil
		}
		if strings.HasPrefix(line, "Tree=") {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lightgbm header %s: %w", path, err)
	}
	return nil, nil
}
