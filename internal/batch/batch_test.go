package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockchart/internal/chart"
	"stockchart/internal/market"
	"stockchart/internal/model"
	"stockchart/internal/symbol"
)

type fakeProvider struct {
	dir  symbol.Directory
	bars map[string][]model.Bar
}

func (p *fakeProvider) GetName() string { return "fake" }

func (p *fakeProvider) Directory(_ context.Context) (symbol.Directory, error) {
	return p.dir, nil
}

func (p *fakeProvider) DailyBars(_ context.Context, tsCode, _, _ string) ([]model.Bar, error) {
	return p.bars[tsCode], nil
}

func (p *fakeProvider) Close() error { return nil }

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	bars := make([]model.Bar, 0, 20)
	price := 10.0
	for i := 0; i < 20; i++ {
		d := float64(i%4) - 1.5
		bars = append(bars, model.Bar{
			TSCode:    "600519.SH",
			TradeDate: fmt.Sprintf("202301%02d", i+10),
			Open:      price,
			High:      price + 1,
			Low:       price - 1,
			Close:     price + d*0.2,
			Volume:    1000,
		})
		price += d * 0.2
	}
	p := &fakeProvider{
		dir: symbol.Directory{
			{TSCode: "600519.SH", Symbol: "600519", Name: "贵州茅台"},
			{TSCode: "600000.SH", Symbol: "600000", Name: "浦发银行"},
		},
		bars: map[string][]model.Bar{"600519.SH": bars},
	}
	return &Runner{
		Fetcher:  &market.Fetcher{Provider: p},
		Renderer: &chart.Renderer{DPI: 96},
		ChartDir: t.TempDir(),
	}
}

func TestRenderFromSymbol_SavesChart(t *testing.T) {
	t.Parallel()
	r := newTestRunner(t)

	art, bars, err := r.RenderFromSymbol(context.Background(),
		market.FetchRequest{Name: "茅台", StartDate: "20230110", EndDate: "20230129"},
		chart.Options{Type: chart.TypeCandle, Width: 6, Height: 4}, "")
	require.NoError(t, err)
	require.NotNil(t, art)
	assert.Len(t, bars, 20)
	assert.FileExists(t, art.Path)
	assert.Contains(t, art.Path, "茅台_candle_20230110_20230129.png")
}

func TestRenderFromSymbol_EmptyRange(t *testing.T) {
	t.Parallel()
	r := newTestRunner(t)

	art, bars, err := r.RenderFromSymbol(context.Background(),
		market.FetchRequest{Name: "浦发银行"},
		chart.Options{Type: chart.TypeLine, Width: 4, Height: 3}, "")
	require.NoError(t, err)
	assert.Nil(t, art)
	assert.Empty(t, bars)
}

func TestRenderFromSymbol_InvalidRequest(t *testing.T) {
	t.Parallel()
	r := newTestRunner(t)

	_, _, err := r.RenderFromSymbol(context.Background(), market.FetchRequest{},
		chart.Options{}, "")
	assert.ErrorIs(t, err, market.ErrInvalidArgument)
}

func TestRenderMany_OrderAndErrorIsolation(t *testing.T) {
	t.Parallel()
	r := newTestRunner(t)

	reqs := []market.FetchRequest{
		{Name: "茅台", StartDate: "20230110", EndDate: "20230129"},
		{Name: "不存在的公司"},
	}
	results := r.RenderMany(context.Background(), reqs,
		[]string{chart.TypeCandle, chart.TypeLine},
		chart.Options{Width: 6, Height: 4})

	require.Len(t, results, 4)

	assert.Equal(t, "茅台", results[0].Symbol)
	assert.Equal(t, chart.TypeCandle, results[0].ChartType)
	assert.Equal(t, "茅台", results[1].Symbol)
	assert.Equal(t, chart.TypeLine, results[1].ChartType)
	assert.Equal(t, "不存在的公司", results[2].Symbol)
	assert.Equal(t, "不存在的公司", results[3].Symbol)

	for _, res := range results[:2] {
		assert.True(t, res.Ok(), res.ChartType)
		assert.Equal(t, 20, res.Rows)
		assert.FileExists(t, res.SavedPath)
	}
	for _, res := range results[2:] {
		assert.False(t, res.Ok(), res.ChartType)
		assert.Contains(t, res.Error, "不存在的公司")
	}
}

func TestRenderFromSymbol_DefaultTypeInFilename(t *testing.T) {
	t.Parallel()
	r := newTestRunner(t)

	// an unset chart type renders as candle and names the file accordingly
	art, _, err := r.RenderFromSymbol(context.Background(),
		market.FetchRequest{Name: "茅台", StartDate: "20230110", EndDate: "20230129"},
		chart.Options{Width: 4, Height: 3}, "")
	require.NoError(t, err)
	require.NotNil(t, art)
	assert.Contains(t, art.Path, "茅台_candle_20230110_20230129.png")
}

func TestWriteRunReport_SplitsByOutcome(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	results := []Result{
		{Symbol: "茅台", ChartType: chart.TypeCandle, Rows: 20, SavedPath: "x.png"},
		{Symbol: "不存在的公司", ChartType: chart.TypeCandle, Error: "symbol not found"},
	}
	require.NoError(t, WriteRunReport(dir, results))
	assert.FileExists(t, dir+"/.lastrun.success.json")
	assert.FileExists(t, dir+"/.lastrun.failed.json")

	// empty batch writes nothing
	empty := t.TempDir()
	require.NoError(t, WriteRunReport(empty, nil))
	assert.NoFileExists(t, empty+"/.lastrun.success.json")
}

func TestRenderMany_DefaultsToCandle(t *testing.T) {
	t.Parallel()
	r := newTestRunner(t)

	results := r.RenderMany(context.Background(),
		[]market.FetchRequest{{Name: "茅台", StartDate: "20230110", EndDate: "20230129"}},
		nil, chart.Options{Width: 4, Height: 3})
	require.Len(t, results, 1)
	assert.Equal(t, chart.TypeCandle, results[0].ChartType)
	assert.True(t, results[0].Ok())
}
