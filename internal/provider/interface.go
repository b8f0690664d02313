package provider

import (
	"context"

	"stockchart/internal/model"
	"stockchart/internal/symbol"
)

// DataProvider is the abstraction used by the application when accessing a
// market-data source. Implementations are responsible for their own transport
// details and resource cleanup.
type DataProvider interface {
	GetName() string
	// Directory fetches the listed-stock symbol directory.
	Directory(ctx context.Context) (symbol.Directory, error)
	// DailyBars fetches daily bars for tsCode over the closed range
	// [startDate, endDate] (YYYYMMDD). No data is not an error.
	DailyBars(ctx context.Context, tsCode, startDate, endDate string) ([]model.Bar, error)
	Close() error
}
