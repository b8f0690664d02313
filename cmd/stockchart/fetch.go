package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"stockchart/internal/market"
)

// fetchCmd downloads a daily series and persists it under DATA_DIR.
type fetchCmd struct {
	name  string
	code  string
	start string
	end   string
	out   string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily bars and save them to a file" }
func (*fetchCmd) Usage() string {
	return `fetch -name 浦发银行 [-start 20230101] [-end 20231231] [-o file]:
  Fetch daily bars for one stock (by name or -code) and save them under DATA_DIR.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "stock display name (resolved against the symbol directory)")
	f.StringVar(&c.code, "code", "", "ticker code, e.g. 000001.SZ")
	f.StringVar(&c.start, "start", "", "range start, YYYYMMDD (default 20100101)")
	f.StringVar(&c.end, "end", "", "range end, YYYYMMDD (default today)")
	f.StringVar(&c.out, "o", "", "output filename (default {name}_{min}_{max}.{ext})")
}

func (c *fetchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.DP.Close()

	req := market.FetchRequest{Name: c.name, TSCode: c.code, StartDate: c.start, EndDate: c.end}
	bars, path, err := a.Fetcher.FetchAndPersist(ctx, req, c.out)
	if err != nil {
		slog.Error("fetch failed", "symbol", req.Label(), "error", err)
		return subcommands.ExitFailure
	}
	slog.Info("fetch done", "symbol", req.Label(), "rows", len(bars), "path", path)
	return subcommands.ExitSuccess
}
