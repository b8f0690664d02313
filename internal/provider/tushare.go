package provider

import (
	"context"

	"stockchart/internal/model"
	"stockchart/internal/symbol"
	"stockchart/internal/tushare"
)

// TushareProvider is a DataProvider implementation backed by the Tushare Pro
// API. It embeds *tushare.Client to expose the client with minimal
// boilerplate.
type TushareProvider struct {
	*tushare.Client
}

// NewTushareProvider creates a new Tushare-backed DataProvider.
func NewTushareProvider(baseURL, token string) *TushareProvider {
	return &TushareProvider{Client: tushare.NewClient(baseURL, token)}
}

// GetName returns provider name
func (p *TushareProvider) GetName() string {
	return "Tushare"
}

// Directory fetches the listed-stock directory.
func (p *TushareProvider) Directory(ctx context.Context) (symbol.Directory, error) {
	return p.Client.StockBasic(ctx)
}

// DailyBars fetches daily bars for tsCode over [startDate, endDate].
func (p *TushareProvider) DailyBars(ctx context.Context, tsCode, startDate, endDate string) ([]model.Bar, error) {
	return p.Client.Daily(ctx, tsCode, startDate, endDate)
}
