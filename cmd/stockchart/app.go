package main

import (
	"stockchart/internal/app"
	"stockchart/internal/batch"
	"stockchart/internal/chart"
	"stockchart/internal/market"
	"stockchart/internal/provider"
)

// App holds application dependencies built by Wire.
type App struct {
	Config   *app.Config
	DP       *provider.TushareProvider
	Fetcher  *market.Fetcher
	Renderer *chart.Renderer
	Runner   *batch.Runner
}
