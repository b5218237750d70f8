package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matheus-soulza/simulador-enem/internal/domain"
	"github.com/matheus-soulza/simulador-enem/internal/service"
)

// SimulationHandler atiende el formulario y la API de simulación.
type SimulationHandler struct {
	logger *zap.Logger
	svc    *service.PredictionService
}

func NewSimulationHandler(logger *zap.Logger, svc *service.PredictionService) *SimulationHandler {
	return &SimulationHandler{logger: logger, svc: svc}
}

// formView es lo que recibe templates/form.html.
type formView struct {
	Options domain.FormOptions
	Form    domain.Submission
	Result  *domain.Prediction
	Error   string
}

// ShowForm maneja GET /.
func (h *SimulationHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", formView{
		Options: domain.AllFormOptions(),
		Form:    domain.DefaultSubmission(),
	})
}

// SubmitForm maneja POST /.
func (h *SimulationHandler) SubmitForm(c *gin.Context) {
	view := formView{
		Options: domain.AllFormOptions(),
		Form:    domain.DefaultSubmission(),
	}
	if err := c.ShouldBind(&view.Form); err != nil {
		h.logger.Warn("invalid form submission", zap.Error(err))
		view.Error = "Formulário inválido."
		c.HTML(http.StatusBadRequest, "form.html", view)
		return
	}

	pred, err := h.svc.Predict(c.Request.Context(), view.Form)
	if err != nil {
		status, msg := h.predictionError(err)
		view.Error = msg
		c.HTML(status, "form.html", view)
		return
	}
	view.Result = &pred
	c.HTML(http.StatusOK, "form.html", view)
}

// Options maneja GET /api/options.
func (h *SimulationHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options":  domain.AllFormOptions(),
		"defaults": domain.DefaultSubmission(),
	})
}

// Schema maneja GET /api/schema.
func (h *SimulationHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Schema())
}

// Predict maneja POST /api/predict.
func (h *SimulationHandler) Predict(c *gin.Context) {
	sub, ok := h.bindSubmission(c)
	if !ok {
		return
	}
	pred, err := h.svc.Predict(c.Request.Context(), sub)
	if err != nil {
		status, msg := h.predictionError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prediction": pred})
}

// Encode maneja POST /api/encode.
func (h *SimulationHandler) Encode(c *gin.Context) {
	sub, ok := h.bindSubmission(c)
	if !ok {
		return
	}
	enc, err := h.svc.Encode(c.Request.Context(), sub)
	if err != nil {
		status, msg := h.predictionError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"encoding": enc})
}

// Healthz maneja GET /healthz.
func (h *SimulationHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"features": h.svc.NumFeatures(),
	})
}

// bindSubmission parte de los valores por defecto; un cuerpo vacío los usa tal cual.
func (h *SimulationHandler) bindSubmission(c *gin.Context) (domain.Submission, bool) {
	sub := domain.DefaultSubmission()
	if err := c.ShouldBindJSON(&sub); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid simulation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return domain.Submission{}, false
	}
	return sub, true
}

func (h *SimulationHandler) predictionError(err error) (int, string) {
	if errors.Is(err, service.ErrInvalidSelection) {
		return http.StatusBadRequest, err.Error()
	}
	h.logger.Error("prediction failed", zap.Error(err))
	return http.StatusInternalServerError, "could not run prediction"
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
