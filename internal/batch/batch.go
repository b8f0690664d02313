// Package batch composes the fetcher and the renderer: single-symbol chart
// generation and sequential multi-symbol batches with per-item error
// isolation.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"stockchart/internal/chart"
	"stockchart/internal/market"
	"stockchart/internal/model"
)

// Result records the outcome of one symbol × chart-type item.
type Result struct {
	Symbol    string `json:"symbol"`
	ChartType string `json:"chart_type"`
	Rows      int    `json:"rows,omitempty"`
	SavedPath string `json:"saved_path,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Ok reports whether the item produced a chart.
func (r Result) Ok() bool { return r.Error == "" }

// Runner drives chart generation end to end. ChartDir is where rendered
// images land.
type Runner struct {
	Fetcher  *market.Fetcher
	Renderer *chart.Renderer
	ChartDir string
}

// RenderFromSymbol fetches the series for req, renders one chart and saves
// it under ChartDir. The filename is derived from
// {label}_{chartType}_{start}_{end}.png when empty. An empty fetch result
// yields (nil, bars, nil): nothing to draw, not an error.
func (r *Runner) RenderFromSymbol(ctx context.Context, req market.FetchRequest, o chart.Options, filename string) (*chart.Artifact, []model.Bar, error) {
	if o.Type == "" {
		o.Type = chart.TypeCandle
	}
	bars, err := r.Fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if len(bars) == 0 {
		slog.Info("no data, skipping chart", "symbol", req.Label())
		return nil, bars, nil
	}

	frame, err := chart.FrameFromBars(bars)
	if err != nil {
		return nil, bars, err
	}
	art, err := r.Renderer.Render(frame, o)
	if err != nil {
		return nil, bars, err
	}

	if filename == "" {
		start := req.StartDate
		if start == "" {
			start = market.DefaultStartDate
		}
		end := req.EndDate
		if end == "" {
			end = time.Now().Format("20060102")
		}
		filename = fmt.Sprintf("%s_%s_%s_%s.png", req.Label(), o.Type, start, end)
	}
	if err := art.Save(filepath.Join(r.ChartDir, filename)); err != nil {
		return nil, bars, err
	}
	return art, bars, nil
}

// RenderMany renders every chart type for every request, sequentially in
// input order (outer: symbol, inner: chart type). A per-item failure is
// recorded in its Result entry instead of aborting the batch.
func (r *Runner) RenderMany(ctx context.Context, reqs []market.FetchRequest, chartTypes []string, o chart.Options) []Result {
	if len(chartTypes) == 0 {
		chartTypes = []string{chart.TypeCandle}
	}

	results := make([]Result, 0, len(reqs)*len(chartTypes))
	for _, req := range reqs {
		for _, ct := range chartTypes {
			slog.Info("rendering", "symbol", req.Label(), "chart_type", ct)
			opts := o
			opts.Type = ct

			res := Result{Symbol: req.Label(), ChartType: ct}
			art, bars, err := r.RenderFromSymbol(ctx, req, opts, "")
			switch {
			case err != nil:
				slog.Error("chart failed", "symbol", req.Label(), "chart_type", ct, "error", err)
				res.Error = err.Error()
			case art == nil:
				res.Error = "no data in range"
			default:
				res.Rows = len(bars)
				res.SavedPath = art.Path
			}
			results = append(results, res)
		}
	}
	return results
}
