package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matheus-soulza/simulador-enem/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	simH *SimulationHandler,
	limiter service.PredictRateLimiter,
) *gin.Engine {
	if limiter == nil {
		limiter = service.NewNopRateLimiter()
	}
	r := gin.New()
	r.SetHTMLTemplate(formTemplate())

	// Middlewares básicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/", simH.ShowForm)
	r.POST("/", rateLimitMiddleware(limiter), simH.SubmitForm)
	r.GET("/healthz", simH.Healthz)

	api := r.Group("/api", jsonContentTypeMiddleware())
	api.GET("/options", simH.Options)
	api.GET("/schema", simH.Schema)
	api.POST("/predict", rateLimitMiddleware(limiter), simH.Predict)
	api.POST("/encode", simH.Encode)

	return r
}

func formTemplate() *template.Template {
	funcs := template.FuncMap{
		"score": formatScore,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// rateLimitMiddleware corta con 429 cuando el cliente supera su cupo.
func rateLimitMiddleware(limiter service.PredictRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": service.ErrRateLimited.Error()})
			return
		}
		c.Next()
	}
}
