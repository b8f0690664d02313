//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"stockchart/internal/app"
)

// InitializeApp builds App (config, provider, fetcher, renderer, runner) via
// Wire. Caller must call a.DP.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSeriesSaver,
		app.ProvideTushareProvider,
		app.ProvideFetcher,
		app.ProvideFontConfig,
		app.ProvideRenderer,
		app.ProvideRunner,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
