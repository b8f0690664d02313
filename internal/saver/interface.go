package saver

import (
	"strings"

	"stockchart/internal/model"
)

// SeriesSaver is the abstraction for persisting a fetched daily series.
// High-level code injects an implementation; callers depend on the interface
// only.
type SeriesSaver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// NewSeriesSaver creates an implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewSeriesSaver(format string) SeriesSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
