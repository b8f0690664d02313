// Package chart normalizes tabular price data and renders it as
// candlestick, OHLC, line, renko or point-and-figure charts.
package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"stockchart/internal/model"
)

// FrameRow is one trading day in canonical shape.
type FrameRow struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Frame is a date-indexed, ascending-sorted series with canonical OHLCV
// columns, ready for rendering.
type Frame struct {
	Name      string
	Rows      []FrameRow
	HasVolume bool
}

// Start returns the first date of the frame.
func (f *Frame) Start() time.Time {
	if len(f.Rows) == 0 {
		return time.Time{}
	}
	return f.Rows[0].Date
}

// End returns the last date of the frame.
func (f *Frame) End() time.Time {
	if len(f.Rows) == 0 {
		return time.Time{}
	}
	return f.Rows[len(f.Rows)-1].Date
}

// SchemaError reports why a table could not be normalized: required columns
// missing after synonym remapping, or date values no parser accepted.
type SchemaError struct {
	MissingColumns []string
	BadDates       []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.MissingColumns) > 0 {
		parts = append(parts, fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingColumns, ", ")))
	}
	if len(e.BadDates) > 0 {
		parts = append(parts, fmt.Sprintf("unparseable dates: %s", strings.Join(e.BadDates, ", ")))
	}
	if len(parts) == 0 {
		return "schema error"
	}
	return "schema error: " + strings.Join(parts, "; ")
}

// columnSynonyms remaps lower-cased incoming column names to canonical ones.
var columnSynonyms = map[string]string{
	"date":       "Date",
	"trade_date": "Date",
	"open":       "Open",
	"high":       "High",
	"low":        "Low",
	"close":      "Close",
	"vol":        "Volume",
	"volume":     "Volume",
	"stock_name": "Name",
	"name":       "Name",
	"ts_code":    "Ticker",
	"ticker":     "Ticker",
}

var requiredColumns = []string{"Open", "High", "Low", "Close"}

// dateParsers are tried in order until one accepts the value.
var dateParsers = []func(string) (time.Time, bool){
	parseDateLayout("20060102"),
	parseDateLayout("2006-01-02"),
	parseDateLayout("2006/01/02"),
	parseDateTimePrefix,
}

func parseDateLayout(layout string) func(string) (time.Time, bool) {
	return func(s string) (time.Time, bool) {
		t, err := time.Parse(layout, s)
		return t, err == nil
	}
}

// parseDateTimePrefix accepts datetime strings by parsing their date prefix,
// e.g. "2023-01-03 00:00:00" or RFC 3339 values.
func parseDateTimePrefix(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	return t, err == nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, p := range dateParsers {
		if t, ok := p(s); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// canonicalColumns lower-cases then remaps the header through the synonym
// table. Unknown columns pass through unchanged.
func canonicalColumns(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		lc := strings.ToLower(strings.TrimSpace(c))
		if canon, ok := columnSynonyms[lc]; ok {
			out[i] = canon
		} else {
			out[i] = lc
		}
	}
	return out
}

// Normalize converts loose tabular data into a Frame: canonical column
// names, a date-typed sort key, ascending order. It fails with *SchemaError
// when the date column or any of the four price columns is absent, or when a
// date value defeats every parser. Volume is optional. Applying Normalize to
// the output of Frame.Table is the identity.
func Normalize(t *model.Table) (*Frame, error) {
	cols := canonicalColumns(t.Columns)
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, seen := idx[c]; !seen {
			idx[c] = i
		}
	}

	schemaErr := &SchemaError{}
	for _, rc := range append([]string{"Date"}, requiredColumns...) {
		if _, ok := idx[rc]; !ok {
			schemaErr.MissingColumns = append(schemaErr.MissingColumns, rc)
		}
	}
	if len(schemaErr.MissingColumns) > 0 {
		return nil, schemaErr
	}

	volIdx, hasVolume := idx["Volume"]

	frame := &Frame{HasVolume: hasVolume, Rows: make([]FrameRow, 0, len(t.Rows))}
	if ni, ok := idx["Name"]; ok && len(t.Rows) > 0 && ni < len(t.Rows[0]) {
		frame.Name = t.Rows[0][ni]
	}
	if frame.Name == "" {
		if ti, ok := idx["Ticker"]; ok && len(t.Rows) > 0 && ti < len(t.Rows[0]) {
			frame.Name = t.Rows[0][ti]
		}
	}

	for _, rec := range t.Rows {
		raw := field(rec, idx["Date"])
		date, ok := parseDate(raw)
		if !ok {
			schemaErr.BadDates = append(schemaErr.BadDates, raw)
			continue
		}
		row := FrameRow{Date: date}
		for _, pc := range []struct {
			col string
			dst *float64
		}{
			{"Open", &row.Open},
			{"High", &row.High},
			{"Low", &row.Low},
			{"Close", &row.Close},
		} {
			v, err := strconv.ParseFloat(strings.TrimSpace(field(rec, idx[pc.col])), 64)
			if err != nil {
				return nil, fmt.Errorf("normalize: column %s value %q: %w", pc.col, field(rec, idx[pc.col]), err)
			}
			*pc.dst = v
		}
		if hasVolume {
			s := strings.TrimSpace(field(rec, volIdx))
			if s != "" {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, fmt.Errorf("normalize: column Volume value %q: %w", s, err)
				}
				row.Volume = v
			}
		}
		frame.Rows = append(frame.Rows, row)
	}
	if len(schemaErr.BadDates) > 0 {
		return nil, schemaErr
	}

	sort.Slice(frame.Rows, func(i, j int) bool { return frame.Rows[i].Date.Before(frame.Rows[j].Date) })
	return frame, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// FrameFromBars normalizes a fetched series directly.
func FrameFromBars(bars []model.Bar) (*Frame, error) {
	return Normalize(model.TableFromBars(bars))
}

// Table converts the frame back to loose tabular data with canonical column
// names and ISO dates.
func (f *Frame) Table() *model.Table {
	cols := []string{"Date", "Open", "High", "Low", "Close"}
	if f.HasVolume {
		cols = append(cols, "Volume")
	}
	if f.Name != "" {
		cols = append(cols, "Name")
	}
	t := &model.Table{Columns: cols, Rows: make([][]string, 0, len(f.Rows))}
	for _, r := range f.Rows {
		rec := []string{
			r.Date.Format("2006-01-02"),
			floatStr(r.Open),
			floatStr(r.High),
			floatStr(r.Low),
			floatStr(r.Close),
		}
		if f.HasVolume {
			rec = append(rec, floatStr(r.Volume))
		}
		if f.Name != "" {
			rec = append(rec, f.Name)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
