package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del simulador.
type Config struct {
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	ModelKind    string `env:"MODEL_KIND" envDefault:"lightgbm"`
	ModelPath    string `env:"MODEL_PATH" envDefault:"enem_lgbm.txt"`
	FeaturesPath string `env:"FEATURES_PATH" envDefault:"enem_features.json"`

	FuzzyEnabled bool    `env:"FUZZY_ENABLED" envDefault:"true"`
	FuzzyCutoff  float64 `env:"FUZZY_CUTOFF" envDefault:"0.6"`
	FuzzyMax     int     `env:"FUZZY_MAX" envDefault:"3"`

	PredictionCacheSize int `env:"PREDICTION_CACHE_SIZE" envDefault:"256"`

	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"30"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
