package app

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration from env.
type Config struct {
	TushareToken string `validate:"required"`
	BaseURL      string `validate:"omitempty,url"`
	DataDir      string `validate:"required"`
	ChartDir     string `validate:"required"`
	SaveFormat   string `validate:"oneof=csv json parquet"`
	LogLevel     string // debug | info | warn | error
}

// LoadConfig reads config from environment and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		TushareToken: os.Getenv("TUSHARE_TOKEN"),
		BaseURL:      os.Getenv("TUSHARE_BASE_URL"),
		DataDir:      getEnv("DATA_DIR", "stock_data"),
		ChartDir:     getEnv("CHART_DIR", "stock_charts"),
		SaveFormat:   getEnv("SAVE_FORMAT", "csv"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
