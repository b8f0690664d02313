package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/subcommands"

	"stockchart/internal/batch"
	"stockchart/internal/chart"
	"stockchart/internal/market"
)

// batchCmd renders every chart type for every listed symbol, sequentially,
// and writes a run report next to the charts.
type batchCmd struct {
	names  string
	codes  string
	types  string
	start  string
	end    string
	style  string
	volume bool
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "render charts for multiple symbols" }
func (*batchCmd) Usage() string {
	return `batch -names 浦发银行,贵州茅台 -types candle,line [-start 20230101]:
  Render every chart type for every symbol. Per-item failures are recorded
  in the run report instead of aborting the batch.
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.names, "names", "", "comma-separated stock display names")
	f.StringVar(&c.codes, "codes", "", "comma-separated ticker codes")
	f.StringVar(&c.types, "types", chart.TypeCandle, fmt.Sprintf("comma-separated chart types: %s", strings.Join(chart.ChartTypes(), "|")))
	f.StringVar(&c.start, "start", "", "range start, YYYYMMDD")
	f.StringVar(&c.end, "end", "", "range end, YYYYMMDD")
	f.StringVar(&c.style, "style", "yahoo", "style preset")
	f.BoolVar(&c.volume, "volume", true, "include the volume subplot")
}

func (c *batchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reqs := c.requests()
	if len(reqs) == 0 {
		slog.Error("nothing to do: give -names and/or -codes")
		return subcommands.ExitUsageError
	}

	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.DP.Close()

	opts := chart.Options{Style: c.style, Volume: c.volume}
	results := a.Runner.RenderMany(ctx, reqs, splitList(c.types), opts)

	var ok int
	for _, r := range results {
		if r.Ok() {
			ok++
		}
	}
	slog.Info("batch done", "success", ok, "failed", len(results)-ok)

	if err := batch.WriteRunReport(a.Config.ChartDir, results); err != nil {
		slog.Warn("could not write run report", "error", err)
	}
	if ok == 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *batchCmd) requests() []market.FetchRequest {
	var reqs []market.FetchRequest
	for _, n := range splitList(c.names) {
		reqs = append(reqs, market.FetchRequest{Name: n, StartDate: c.start, EndDate: c.end})
	}
	for _, code := range splitList(c.codes) {
		reqs = append(reqs, market.FetchRequest{TSCode: code, StartDate: c.start, EndDate: c.end})
	}
	return reqs
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
