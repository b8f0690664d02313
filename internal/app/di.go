package app

import (
	"fmt"

	"stockchart/internal/batch"
	"stockchart/internal/chart"
	"stockchart/internal/market"
	"stockchart/internal/provider"
	"stockchart/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideSeriesSaver creates the SeriesSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideSeriesSaver(cfg *Config) (saver.SeriesSaver, error) {
	sv := saver.NewSeriesSaver(cfg.SaveFormat)
	if sv == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, json, parquet)", cfg.SaveFormat)
	}
	return sv, nil
}

// ProvideTushareProvider creates the Tushare-backed DataProvider (for Wire).
// Caller must call Close() when shutting down.
func ProvideTushareProvider(cfg *Config) *provider.TushareProvider {
	return provider.NewTushareProvider(cfg.BaseURL, cfg.TushareToken)
}

// ProvideFetcher wires the fetcher with its saver and output directory.
func ProvideFetcher(cfg *Config, dp *provider.TushareProvider, sv saver.SeriesSaver) *market.Fetcher {
	return &market.Fetcher{Provider: dp, SaveDir: cfg.DataDir, Saver: sv}
}

// ProvideFontConfig runs one-time host font discovery.
func ProvideFontConfig() *chart.FontConfig {
	return chart.LoadFontConfig()
}

// ProvideRenderer creates the chart renderer.
func ProvideRenderer(fonts *chart.FontConfig) *chart.Renderer {
	return &chart.Renderer{Fonts: fonts}
}

// ProvideRunner wires the batch runner.
func ProvideRunner(cfg *Config, f *market.Fetcher, r *chart.Renderer) *batch.Runner {
	return &batch.Runner{Fetcher: f, Renderer: r, ChartDir: cfg.ChartDir}
}
