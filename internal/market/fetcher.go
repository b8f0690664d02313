// Package market composes symbol resolution, daily-bar fetching and series
// persistence on top of a DataProvider.
package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"stockchart/internal/model"
	"stockchart/internal/provider"
	"stockchart/internal/saver"
)

// DefaultStartDate is applied when a fetch request omits the range start.
const DefaultStartDate = "20100101"

// ErrInvalidArgument is returned when a fetch request does not carry exactly
// one of stock name or ticker code.
var ErrInvalidArgument = errors.New("exactly one of stock name or ticker code required")

// FetchRequest identifies one daily series: exactly one of Name or TSCode,
// plus an optional closed date range in YYYYMMDD form.
type FetchRequest struct {
	Name      string
	TSCode    string
	StartDate string
	EndDate   string
}

// Label returns the human-facing identifier of the request.
func (r FetchRequest) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.TSCode
}

func (r FetchRequest) validate() error {
	switch {
	case r.Name == "" && r.TSCode == "":
		return fmt.Errorf("fetch: neither given: %w", ErrInvalidArgument)
	case r.Name != "" && r.TSCode != "":
		return fmt.Errorf("fetch: both given: %w", ErrInvalidArgument)
	}
	return nil
}

// Fetcher fetches and persists daily series. SaveDir and Saver configure
// where and how Persist writes; both are injected by the caller.
type Fetcher struct {
	Provider provider.DataProvider
	SaveDir  string
	Saver    saver.SeriesSaver
}

// Fetch resolves the request to a ticker when a name is given, applies the
// default date range, and returns the series sorted ascending by trade date,
// annotated with the resolved display name. On a ticker-only request the
// directory is consulted best-effort for the display name; when it is
// unavailable the ticker code stands in. An empty remote result is an empty
// slice, not an error.
func (f *Fetcher) Fetch(ctx context.Context, req FetchRequest) ([]model.Bar, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	tsCode := req.TSCode
	displayName := tsCode
	if req.Name != "" {
		dir, err := f.Provider.Directory(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: symbol directory: %w", req.Name, err)
		}
		entry, err := dir.Resolve(req.Name)
		if err != nil {
			return nil, err
		}
		tsCode = entry.TSCode
		displayName = entry.Name
	}

	start := req.StartDate
	if start == "" {
		start = DefaultStartDate
	}
	end := req.EndDate
	if end == "" {
		end = time.Now().Format("20060102")
	}

	bars, err := f.Provider.DailyBars(ctx, tsCode, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s [%s, %s]: %w", tsCode, start, end, err)
	}
	if len(bars) == 0 {
		slog.Info("no data in range", "ticker", tsCode, "start", start, "end", end)
		return []model.Bar{}, nil
	}

	if req.Name == "" {
		if dir, err := f.Provider.Directory(ctx); err != nil {
			slog.Warn("symbol directory unavailable, using ticker as name", "ticker", tsCode, "error", err)
		} else if entry, ok := dir.FindTicker(tsCode); ok {
			displayName = entry.Name
		}
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].TradeDate < bars[j].TradeDate })
	for i := range bars {
		bars[i].StockName = displayName
	}
	return bars, nil
}

// Persist writes the series under SaveDir, deriving
// {name}_{minDate}_{maxDate}.{ext} when filename is empty. Empty input is a
// no-op returning an empty path. The directory is created when absent.
func (f *Fetcher) Persist(bars []model.Bar, filename string) (string, error) {
	if len(bars) == 0 {
		slog.Info("empty series, nothing to persist")
		return "", nil
	}
	if f.Saver == nil {
		return "", fmt.Errorf("persist: no saver configured")
	}
	if err := os.MkdirAll(f.SaveDir, 0755); err != nil {
		return "", fmt.Errorf("persist: create dir %s: %w", f.SaveDir, err)
	}

	ext := f.Saver.Extension()
	if filename == "" {
		name := bars[0].StockName
		if name == "" {
			name = bars[0].TSCode
		}
		minDate, maxDate := bars[0].TradeDate, bars[0].TradeDate
		for _, b := range bars[1:] {
			if b.TradeDate < minDate {
				minDate = b.TradeDate
			}
			if b.TradeDate > maxDate {
				maxDate = b.TradeDate
			}
		}
		filename = fmt.Sprintf("%s_%s_%s.%s", name, minDate, maxDate, ext)
	} else if !strings.HasSuffix(filename, "."+ext) {
		filename += "." + ext
	}

	path := filepath.Join(f.SaveDir, filename)
	if err := f.Saver.Save(bars, path); err != nil {
		return "", fmt.Errorf("persist: write %s: %w", path, err)
	}
	slog.Info("series saved", "path", path, "rows", len(bars))
	return path, nil
}

// FetchAndPersist is the convenience composition of Fetch then Persist.
// An empty fetch returns (nil bars, "", nil) without touching the disk.
func (f *Fetcher) FetchAndPersist(ctx context.Context, req FetchRequest, filename string) ([]model.Bar, string, error) {
	bars, err := f.Fetch(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if len(bars) == 0 {
		return bars, "", nil
	}
	path, err := f.Persist(bars, filename)
	if err != nil {
		return bars, "", err
	}
	return bars, path, nil
}
