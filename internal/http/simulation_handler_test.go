package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matheus-soulza/simulador-enem/internal/domain"
	"github.com/matheus-soulza/simulador-enem/internal/features"
	"github.com/matheus-soulza/simulador-enem/internal/names"
	"github.com/matheus-soulza/simulador-enem/internal/service"
)

type mockPredictor struct {
	score float64
	err   error
	calls int
}

func (m *mockPredictor) Predict(row []float64) (float64, error) {
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return m.score, nil
}

func (m *mockPredictor) NumFeatures() int { return len(features.LogicalColumns()) }

type mockLimiter struct {
	allow bool
	keys  []string
}

func (m *mockLimiter) Allow(key string) bool {
	m.keys = append(m.keys, key)
	return m.allow
}

func newTestService(t *testing.T, p *mockPredictor, drop ...string) *service.PredictionService {
	t.Helper()
	skip := make(map[string]bool, len(drop))
	for _, d := range drop {
		skip[d] = true
	}
	var cols []string
	for _, c := range features.LogicalColumns() {
		if !skip[c] {
			cols = append(cols, strings.ReplaceAll(c, " ", "_"))
		}
	}
	schema, err := features.NewSchema(cols)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	index, err := names.NewIndex(cols)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	enc := features.NewEncoder(schema, names.NewResolver(index, names.NewDifflibSuggester(3, 0.6)))
	svc, err := service.NewPredictionService(zap.NewNop(), enc, p, 0)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return svc
}

func setupSimulationRouter(svc *service.PredictionService, limiter service.PredictRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(zap.NewNop(), NewSimulationHandler(zap.NewNop(), svc), limiter)
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func performForm(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type predictResponse struct {
	Prediction domain.Prediction `json:"prediction"`
	Error      string            `json:"error"`
}

func TestSimulationHandlerPredict_Defaults(t *testing.T) {
	p := &mockPredictor{score: 512.34}
	r := setupSimulationRouter(newTestService(t, p), nil)

	rec := performRequest(r, http.MethodPost, "/api/predict", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected json content type, got %q", ct)
	}
	var resp predictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Prediction.Score != 512.34 {
		t.Fatalf("expected score 512.34, got %v", resp.Prediction.Score)
	}
	if resp.Prediction.Answers.FaixaEtaria != 2 || resp.Prediction.Answers.UF != "SE" {
		t.Fatalf("expected default answers, got %+v", resp.Prediction.Answers)
	}
}

func TestSimulationHandlerPredict_PartialBodyKeepsDefaults(t *testing.T) {
	p := &mockPredictor{score: 600}
	r := setupSimulationRouter(newTestService(t, p), nil)

	rec := performRequest(r, http.MethodPost, "/api/predict", map[string]any{
		"sexo":          "M",
		"instrucao_mae": domain.InstrucaoList[4],
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp predictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	a := resp.Prediction.Answers
	if a.Sexo != "M" || a.InstrucaoMaeOrd != 5 || a.InstrucaoMaeNS != 0 {
		t.Fatalf("unexpected answers %+v", a)
	}
	if a.RendaFamiliarOrd != 6 {
		t.Fatalf("expected default income to be kept, got %d", a.RendaFamiliarOrd)
	}
}

func TestSimulationHandlerPredict_InvalidSelection(t *testing.T) {
	p := &mockPredictor{}
	r := setupSimulationRouter(newTestService(t, p), nil)

	rec := performRequest(r, http.MethodPost, "/api/predict", map[string]any{"uf": "ZZ"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if p.calls != 0 {
		t.Fatalf("predictor should not run")
	}
}

func TestSimulationHandlerPredict_InvalidJSON(t *testing.T) {
	r := setupSimulationRouter(newTestService(t, &mockPredictor{}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSimulationHandlerPredict_PredictorFailure(t *testing.T) {
	r := setupSimulationRouter(newTestService(t, &mockPredictor{err: errors.New("boom")}), nil)

	rec := performRequest(r, http.MethodPost, "/api/predict", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestSimulationHandlerPredict_RateLimited(t *testing.T) {
	p := &mockPredictor{}
	limiter := &mockLimiter{allow: false}
	r := setupSimulationRouter(newTestService(t, p), limiter)

	rec := performRequest(r, http.MethodPost, "/api/predict", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
	if p.calls != 0 {
		t.Fatalf("predictor should not run when rate limited")
	}
	if len(limiter.keys) != 1 || limiter.keys[0] == "" {
		t.Fatalf("expected limiter keyed by client ip, got %v", limiter.keys)
	}
}

func TestSimulationHandlerEncode_ReportsMissing(t *testing.T) {
	p := &mockPredictor{}
	r := setupSimulationRouter(newTestService(t, p, "TP_SEXO_M"), &mockLimiter{allow: false})

	rec := performRequest(r, http.MethodPost, "/api/encode", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("encode is not rate limited, got %d", rec.Code)
	}
	var resp struct {
		Encoding domain.Encoding `json:"encoding"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Encoding.Missing) != 1 || resp.Encoding.Missing[0] != "TP_SEXO_M" {
		t.Fatalf("expected TP_SEXO_M missing, got %v", resp.Encoding.Missing)
	}
	if p.calls != 0 {
		t.Fatalf("encode must not call the predictor")
	}
}

func TestSimulationHandlerOptionsAndSchema(t *testing.T) {
	r := setupSimulationRouter(newTestService(t, &mockPredictor{}, "SG_UF_PROVA_AC"), nil)

	rec := performRequest(r, http.MethodGet, "/api/options", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var opts struct {
		Options  domain.FormOptions `json:"options"`
		Defaults domain.Submission  `json:"defaults"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(opts.Options.UF) != 27 || opts.Options.Instrucao[0] != domain.NaoSei {
		t.Fatalf("unexpected options %+v", opts.Options)
	}
	if opts.Defaults.UF != "SE" {
		t.Fatalf("expected default UF SE, got %q", opts.Defaults.UF)
	}

	rec = performRequest(r, http.MethodGet, "/api/schema", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var report domain.SchemaReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(report.Unresolved) != 1 || report.Unresolved[0] != "SG_UF_PROVA_AC" {
		t.Fatalf("expected SG_UF_PROVA_AC unresolved, got %v", report.Unresolved)
	}
}

func TestSimulationHandlerForm(t *testing.T) {
	p := &mockPredictor{score: 512.34}
	r := setupSimulationRouter(newTestService(t, p, "TP_SEXO_M"), nil)

	t.Run("get renders defaults", func(t *testing.T) {
		rec := performRequest(r, http.MethodGet, "/", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `<option value="SE" selected>`) {
			t.Fatalf("expected SE preselected")
		}
		if strings.Contains(body, "Nota estimada") || strings.Contains(body, "garantia de resultado") {
			t.Fatalf("no result expected before submit")
		}
	})

	t.Run("post renders score and warning", func(t *testing.T) {
		rec := performForm(r, url.Values{"sexo": {"M"}, "qtd_residentes": {"4"}})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Nota estimada: 512.3") {
			t.Fatalf("expected formatted score in body")
		}
		if !strings.Contains(body, "Não representa garantia de resultado.") {
			t.Fatalf("expected disclaimer under the score")
		}
		if !strings.Contains(body, "TP_SEXO_M") {
			t.Fatalf("expected missing column warning")
		}
	})

	t.Run("post with invalid selection", func(t *testing.T) {
		rec := performForm(r, url.Values{"renda": {"Muita"}})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHealthz(t *testing.T) {
	svc := newTestService(t, &mockPredictor{}, "TP_LINGUA_1")
	r := setupSimulationRouter(svc, nil)

	rec := performRequest(r, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Status   string `json:"status"`
		Features int    `json:"features"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected status ok, got %q", resp.Status)
	}
	if want := len(features.LogicalColumns()) - 1; resp.Features != want {
		t.Fatalf("expected %d features, got %d", want, resp.Features)
	}
}
