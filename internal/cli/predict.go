package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matheus-soulza/simulador-enem/internal/domain"
)

func newPredictCmd(opts *options) *cobra.Command {
	var answersPath string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate a score from an answers file",
		Long: `predict lê as respostas de um arquivo YAML ou JSON com as mesmas chaves
da API (faixa_etaria, renda, sexo, uf, ...). Campos ausentes usam os
valores iniciais do formulário.

Example:
  simulador predict --answers respostas.yaml
  simulador predict --answers respostas.json --model enem_lgbm.txt --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := readSubmission(answersPath)
			if err != nil {
				return err
			}
			rt, err := opts.load()
			if err != nil {
				return err
			}
			defer rt.logger.Sync()

			pred, err := rt.svc.Predict(cmd.Context(), sub)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), pred)
			}
			printPrediction(cmd.OutOrStdout(), pred)
			return nil
		},
	}
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "answers file (.yaml, .yml or .json); empty uses the form defaults")
	return cmd
}

// readSubmission parte de los valores por defecto y sobrescribe con el archivo.
func readSubmission(path string) (domain.Submission, error) {
	sub := domain.DefaultSubmission()
	if path == "" {
		return sub, nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("read answers: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(payload, &sub)
	default:
		err = json.Unmarshal(payload, &sub)
	}
	if err != nil {
		return domain.Submission{}, fmt.Errorf("parse answers %s: %w", path, err)
	}
	return sub, nil
}

func printPrediction(w io.Writer, pred domain.Prediction) {
	fmt.Fprintf(w, "Nota estimada: %.1f\n", pred.Score)
	if len(pred.Missing) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Colunas não encontradas no modelo (ficaram em 0):")
		for _, m := range pred.Missing {
			if s := pred.Suggestions[m]; len(s) > 0 {
				fmt.Fprintf(w, "  - %s (parecidas: %s)\n", m, strings.Join(s, ", "))
				continue
			}
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Linha enviada ao modelo:")
	for _, f := range pred.Features {
		fmt.Fprintf(w, "  %-40s %g\n", f.Name, f.Value)
	}
}
