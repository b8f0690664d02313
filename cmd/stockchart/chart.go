package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"stockchart/internal/chart"
	"stockchart/internal/market"
	"stockchart/internal/saver"
)

// chartCmd renders one chart, either from a previously saved CSV file or by
// fetching the symbol first.
type chartCmd struct {
	csv       string
	name      string
	code      string
	start     string
	end       string
	chartType string
	style     string
	volume    bool
	title     string
	out       string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a chart from a CSV file or a symbol" }
func (*chartCmd) Usage() string {
	return `chart -csv stock_data/浦发银行_20230103_20231229.csv [-type candle]:
chart -name 浦发银行 -start 20230101 -end 20231231 [-type candle]:
  Render one chart and save it as a PNG under CHART_DIR.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csv, "csv", "", "input CSV file (skips fetching)")
	f.StringVar(&c.name, "name", "", "stock display name")
	f.StringVar(&c.code, "code", "", "ticker code, e.g. 000001.SZ")
	f.StringVar(&c.start, "start", "", "range start, YYYYMMDD")
	f.StringVar(&c.end, "end", "", "range end, YYYYMMDD")
	f.StringVar(&c.chartType, "type", chart.TypeCandle, fmt.Sprintf("chart type: %s", strings.Join(chart.ChartTypes(), "|")))
	f.StringVar(&c.style, "style", "yahoo", fmt.Sprintf("style preset: %s", strings.Join(chart.StyleNames(), "|")))
	f.BoolVar(&c.volume, "volume", true, "include the volume subplot")
	f.StringVar(&c.title, "title", "", "chart title (default derived from the data)")
	f.StringVar(&c.out, "o", "", "output PNG filename")
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.DP.Close()

	opts := chart.Options{
		Type:   c.chartType,
		Style:  c.style,
		Volume: c.volume,
		Title:  c.title,
	}

	if c.csv != "" {
		return c.renderFromCSV(a, opts)
	}

	req := market.FetchRequest{Name: c.name, TSCode: c.code, StartDate: c.start, EndDate: c.end}
	art, _, err := a.Runner.RenderFromSymbol(ctx, req, opts, c.out)
	if err != nil {
		slog.Error("chart failed", "symbol", req.Label(), "error", err)
		return subcommands.ExitFailure
	}
	if art == nil {
		slog.Info("no data in range, no chart produced", "symbol", req.Label())
		return subcommands.ExitSuccess
	}
	return subcommands.ExitSuccess
}

func (c *chartCmd) renderFromCSV(a *App, opts chart.Options) subcommands.ExitStatus {
	table, err := saver.ReadCSV(c.csv)
	if err != nil {
		slog.Error("read csv failed", "path", c.csv, "error", err)
		return subcommands.ExitFailure
	}
	frame, err := chart.Normalize(table)
	if err != nil {
		slog.Error("normalize failed", "path", c.csv, "error", err)
		return subcommands.ExitFailure
	}
	art, err := a.Renderer.Render(frame, opts)
	if err != nil {
		slog.Error("render failed", "path", c.csv, "error", err)
		return subcommands.ExitFailure
	}

	out := c.out
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(c.csv), filepath.Ext(c.csv))
		out = fmt.Sprintf("%s_%s.png", base, opts.Type)
	}
	if err := art.Save(filepath.Join(a.Config.ChartDir, out)); err != nil {
		slog.Error("save failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
