package model

import (
	"strconv"
	"strings"
)

// barColumns is the canonical column order used when bars are written to or
// read from delimited files.
var barColumns = []string{
	"ts_code", "trade_date", "open", "high", "low", "close",
	"pre_close", "change", "pct_chg", "vol", "amount", "stock_name",
}

// BarColumns returns the CSV header for a bar row.
func BarColumns() []string {
	out := make([]string, len(barColumns))
	copy(out, barColumns)
	return out
}

// Record returns the bar as one CSV record, aligned with BarColumns.
func (b Bar) Record() []string {
	return []string{
		b.TSCode,
		b.TradeDate,
		floatStr(b.Open),
		floatStr(b.High),
		floatStr(b.Low),
		floatStr(b.Close),
		floatStr(b.PreClose),
		floatStr(b.Change),
		floatStr(b.PctChg),
		floatStr(b.Volume),
		floatStr(b.Amount),
		b.StockName,
	}
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Table is loosely-typed tabular data: a header plus string records.
// It is the interchange shape between file loading and chart normalization,
// where column names are not yet canonical.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the index of the named column, matched
// case-insensitively, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return i
		}
	}
	return -1
}

// TableFromBars converts typed bars into a Table with the canonical header.
func TableFromBars(bars []Bar) *Table {
	t := &Table{Columns: BarColumns(), Rows: make([][]string, 0, len(bars))}
	for _, b := range bars {
		t.Rows = append(t.Rows, b.Record())
	}
	return t
}
