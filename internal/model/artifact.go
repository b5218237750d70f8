package model

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/matheus-soulza/simulador-enem/internal/features"
	"github.com/matheus-soulza/simulador-enem/internal/names"
)

const (
	FeatureSourceModel = "model"
	FeatureSourceFile  = "features_file"
)

// ArtifactConfig indica dónde están el modelo y la lista de columnas de respaldo.
type ArtifactConfig struct {
	Kind         string
	ModelPath    string
	FeaturesPath string
}

// Artifact es el par modelo + esquema, de solo lectura tras la carga.
type Artifact struct {
	Predictor     Predictor
	Schema        features.Schema
	Index         *names.Index
	FeatureSource string
}

// LoadArtifact carga el modelo y sus columnas. Las columnas salen del propio
// modelo si las expone; si no, del archivo JSON de respaldo.
func LoadArtifact(cfg ArtifactConfig) (*Artifact, error) {
	predictor, err := LoadPredictor(cfg.Kind, cfg.ModelPath)
	if err != nil {
		return nil, err
	}

	source := FeatureSourceModel
	var cols []string
	if namer, ok := predictor.(FeatureNamer); ok {
		cols = namer.FeatureNames()
	}
	if len(cols) == 0 {
		source = FeatureSourceFile
		cols, err = LoadFeatureList(cfg.FeaturesPath)
		if err != nil {
			return nil, err
		}
	}

	if len(cols) != predictor.NumFeatures() {
		return nil, fmt.Errorf("%w: %d feature names, model expects %d", ErrFeatureCount, len(cols), predictor.NumFeatures())
	}
	schema, err := features.NewSchema(cols)
	if err != nil {
		return nil, fmt.Errorf("feature schema: %w", err)
	}
	index, err := names.NewIndex(cols)
	if err != nil {
		return nil, fmt.Errorf("feature schema: %w", err)
	}

	return &Artifact{
		Predictor:     predictor,
		Schema:        schema,
		Index:         index,
		FeatureSource: source,
	}, nil
}

// LoadFeatureList lee un arreglo JSON de nombres de columna.
func LoadFeatureList(path string) ([]string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read features %s: %w", path, err)
	}
	var cols []string
	if err := json.Unmarshal(payload, &cols); err != nil {
		return nil, fmt.Errorf("parse features %s: %w", path, err)
	}
	return cols, nil
}

// Encoder arma un encoder sobre el esquema del artefacto.
func (a *Artifact) Encoder(suggester names.Suggester) *features.Encoder {
	return features.NewEncoder(a.Schema, names.NewResolver(a.Index, suggester))
}

// Loader carga el artefacto una sola vez por proceso.
type Loader struct {
	cfg      ArtifactConfig
	once     sync.Once
	artifact *Artifact
	err      error
}

func NewLoader(cfg ArtifactConfig) *Loader {
	return &Loader{cfg: cfg}
}

func (l *Loader) Load() (*Artifact, error) {
	l.once.Do(func() {
		l.artifact, l.err = LoadArtifact(l.cfg)
	})
	return l.artifact, l.err
}
