package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/matheus-soulza/simulador-enem/internal/config"
	apihttp "github.com/matheus-soulza/simulador-enem/internal/http"
	"github.com/matheus-soulza/simulador-enem/internal/logging"
	"github.com/matheus-soulza/simulador-enem/internal/model"
	"github.com/matheus-soulza/simulador-enem/internal/names"
	"github.com/matheus-soulza/simulador-enem/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	loader := model.NewLoader(model.ArtifactConfig{
		Kind:         cfg.ModelKind,
		ModelPath:    cfg.ModelPath,
		FeaturesPath: cfg.FeaturesPath,
	})
	artifact, err := loader.Load()
	if err != nil {
		logger.Fatal("load model artifact", zap.Error(err))
	}
	logger.Info("model loaded",
		zap.String("kind", cfg.ModelKind),
		zap.String("path", cfg.ModelPath),
		zap.Int("features", artifact.Schema.Len()),
		zap.String("feature_source", artifact.FeatureSource),
	)

	suggester := names.NewSuggester(cfg.FuzzyEnabled, cfg.FuzzyMax, cfg.FuzzyCutoff)
	predictionSvc, err := service.NewPredictionService(logger, artifact.Encoder(suggester), artifact.Predictor, cfg.PredictionCacheSize)
	if err != nil {
		logger.Fatal("prediction service", zap.Error(err))
	}
	if report := predictionSvc.Schema(); len(report.Unresolved) > 0 {
		logger.Warn("model schema does not cover every answer column", zap.Strings("unresolved", report.Unresolved))
	}

	quota := service.RateLimit{Window: cfg.RateLimitWindow, Max: cfg.RateLimitMax}
	var limiter service.PredictRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, logger, quota)
		}
		cancel()
	}
	if limiter == nil {
		limiter = service.NewMemoryRateLimiter(quota)
	}

	simHandler := apihttp.NewSimulationHandler(logger, predictionSvc)
	router := apihttp.NewRouter(logger, simHandler, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
