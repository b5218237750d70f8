package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/matheus-soulza/simulador-enem/internal/domain"
	"github.com/matheus-soulza/simulador-enem/internal/features"
	"github.com/matheus-soulza/simulador-enem/internal/model"
)

// PredictionService coordina mapeo, codificación e inferencia.
type PredictionService struct {
	logger    *zap.Logger
	encoder   *features.Encoder
	predictor model.Predictor
	memo      *lru.Cache[string, float64]
	now       func() time.Time
}

// NewPredictionService crea el servicio. cacheSize <= 0 desactiva la memoización.
func NewPredictionService(logger *zap.Logger, encoder *features.Encoder, predictor model.Predictor, cacheSize int) (*PredictionService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PredictionService{
		logger:    logger,
		encoder:   encoder,
		predictor: predictor,
		now:       time.Now,
	}
	if cacheSize > 0 {
		memo, err := lru.New[string, float64](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("prediction cache: %w", err)
		}
		s.memo = memo
	}
	return s, nil
}

func (s *PredictionService) Predict(ctx context.Context, sub domain.Submission) (domain.Prediction, error) {
	answers, err := MapSubmission(sub)
	if err != nil {
		return domain.Prediction{}, err
	}
	row, diag := s.encode(answers)

	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, err
	}

	values := row.Values()
	score, cached, err := s.score(values)
	if err != nil {
		s.logger.Error("prediction failed", zap.Error(err))
		return domain.Prediction{}, err
	}

	pred := domain.Prediction{
		ID:          uuid.NewString(),
		Score:       score,
		Answers:     answers,
		Features:    row.Features(),
		Suggestions: diag.Suggestions,
		Cached:      cached,
		CreatedAt:   s.now().UTC(),
	}
	if diag.HasMissing() {
		pred.Missing = diag.SortedMissing()
	}
	s.logger.Debug("prediction",
		zap.String("id", pred.ID),
		zap.Float64("score", score),
		zap.Bool("cached", cached),
	)
	return pred, nil
}

// Encode devuelve la fila y el diagnóstico sin llamar al modelo.
func (s *PredictionService) Encode(ctx context.Context, sub domain.Submission) (domain.Encoding, error) {
	if err := ctx.Err(); err != nil {
		return domain.Encoding{}, err
	}
	answers, err := MapSubmission(sub)
	if err != nil {
		return domain.Encoding{}, err
	}
	row, diag := s.encode(answers)
	enc := domain.Encoding{
		Answers:     answers,
		Features:    row.Features(),
		Suggestions: diag.Suggestions,
	}
	if diag.HasMissing() {
		enc.Missing = diag.SortedMissing()
	}
	return enc, nil
}

func (s *PredictionService) encode(answers domain.AnswerRecord) (*features.Row, features.Diagnostics) {
	row, diag := s.encoder.Encode(answers)
	if diag.HasMissing() {
		s.logger.Warn("columns not found in model schema",
			zap.Strings("missing", diag.SortedMissing()),
			zap.Int("schema_len", s.encoder.Schema().Len()),
		)
	}
	return row, diag
}

func (s *PredictionService) score(values []float64) (float64, bool, error) {
	if s.memo == nil {
		y, err := s.predictor.Predict(values)
		return y, false, err
	}
	key := rowKey(values)
	if y, ok := s.memo.Get(key); ok {
		return y, true, nil
	}
	y, err := s.predictor.Predict(values)
	if err != nil {
		return 0, false, err
	}
	s.memo.Add(key, y)
	return y, false, nil
}

func rowKey(values []float64) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

// NumFeatures devuelve el ancho de la fila que recibe el modelo.
func (s *PredictionService) NumFeatures() int {
	return s.encoder.Schema().Len()
}

// Schema informa las columnas del modelo y las columnas lógicas sin resolver.
func (s *PredictionService) Schema() domain.SchemaReport {
	diag := s.encoder.Audit()
	report := domain.SchemaReport{
		Columns:     s.encoder.Schema().Names(),
		Suggestions: diag.Suggestions,
	}
	if diag.HasMissing() {
		report.Unresolved = diag.SortedMissing()
	}
	return report
}
