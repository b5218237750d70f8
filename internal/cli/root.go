package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matheus-soulza/simulador-enem/internal/config"
	"github.com/matheus-soulza/simulador-enem/internal/logging"
	"github.com/matheus-soulza/simulador-enem/internal/model"
	"github.com/matheus-soulza/simulador-enem/internal/names"
	"github.com/matheus-soulza/simulador-enem/internal/service"
)

// options son los flags globales; vacíos significa "usar la configuración".
type options struct {
	modelKind    string
	modelPath    string
	featuresPath string
	asJSON       bool
}

// NewRootCmd arma el comando raíz con todos los subcomandos.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "simulador",
		Short: "Simulador de nota do ENEM a partir do questionário socioeconômico",
		Long: `simulador codifica as respostas do questionário socioeconômico na linha
de atributos do modelo treinado e devolve a nota estimada.

Os caminhos do modelo vêm de MODEL_KIND, MODEL_PATH e FEATURES_PATH
(ou de um .env) e podem ser sobrescritos pelos flags.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&opts.modelKind, "model-kind", "", "model kind: lightgbm or linear (overrides MODEL_KIND)")
	root.PersistentFlags().StringVar(&opts.modelPath, "model", "", "model file (overrides MODEL_PATH)")
	root.PersistentFlags().StringVar(&opts.featuresPath, "features", "", "fallback feature list JSON (overrides FEATURES_PATH)")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(newPredictCmd(opts), newSchemaCmd(opts), newNormalizeCmd())
	return root
}

// Execute corre el comando raíz.
func Execute() error {
	return NewRootCmd().Execute()
}

// simulator agrupa lo que necesitan predict y schema.
type simulator struct {
	logger   *zap.Logger
	svc      *service.PredictionService
	artifact *model.Artifact
}

func (o *options) load() (*simulator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.modelKind != "" {
		cfg.ModelKind = o.modelKind
	}
	if o.modelPath != "" {
		cfg.ModelPath = o.modelPath
	}
	if o.featuresPath != "" {
		cfg.FeaturesPath = o.featuresPath
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	artifact, err := model.NewLoader(model.ArtifactConfig{
		Kind:         cfg.ModelKind,
		ModelPath:    cfg.ModelPath,
		FeaturesPath: cfg.FeaturesPath,
	}).Load()
	if err != nil {
		return nil, err
	}
	suggester := names.NewSuggester(cfg.FuzzyEnabled, cfg.FuzzyMax, cfg.FuzzyCutoff)
	// Una sola predicción por proceso: sin memo.
	svc, err := service.NewPredictionService(logger, artifact.Encoder(suggester), artifact.Predictor, 0)
	if err != nil {
		return nil, err
	}
	return &simulator{logger: logger, svc: svc, artifact: artifact}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
