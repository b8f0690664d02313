package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockchart/internal/model"
)

func sampleTable() *model.Table {
	return &model.Table{
		Columns: []string{"trade_date", "open", "high", "low", "close", "vol", "stock_name"},
		Rows: [][]string{
			{"20230105", "12", "13", "11.5", "12.8", "3000", "测试股份"},
			{"20230103", "10", "11", "9.5", "10.5", "1000", "测试股份"},
			{"20230104", "10.5", "12.2", "10.4", "12", "2000", "测试股份"},
		},
	}
}

func TestNormalize_SortsAndRemapsColumns(t *testing.T) {
	t.Parallel()

	f, err := Normalize(sampleTable())
	require.NoError(t, err)
	require.Len(t, f.Rows, 3)

	assert.Equal(t, "测试股份", f.Name)
	assert.True(t, f.HasVolume)
	for i := 1; i < len(f.Rows); i++ {
		assert.True(t, f.Rows[i-1].Date.Before(f.Rows[i].Date))
	}
	assert.Equal(t, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), f.Rows[0].Date)
	assert.InDelta(t, 10.5, f.Rows[0].Close, 1e-9)
	assert.InDelta(t, 3000, f.Rows[2].Volume, 1e-9)
}

func TestNormalize_DateFormats(t *testing.T) {
	t.Parallel()

	cases := []string{
		"20230103",
		"2023-01-03",
		"2023/01/03",
		"2023-01-03 00:00:00",
		"2023-01-03T00:00:00Z",
	}
	for _, raw := range cases {
		tbl := &model.Table{
			Columns: []string{"Date", "Open", "High", "Low", "Close"},
			Rows:    [][]string{{raw, "1", "2", "0.5", "1.5"}},
		}
		f, err := Normalize(tbl)
		require.NoError(t, err, raw)
		require.Len(t, f.Rows, 1, raw)
		assert.Equal(t, "2023-01-03", f.Rows[0].Date.Format("2006-01-02"), raw)
	}
}

func TestNormalize_MissingColumns(t *testing.T) {
	t.Parallel()

	tbl := &model.Table{
		Columns: []string{"Date", "Open", "High", "Low"},
		Rows:    [][]string{{"20230103", "1", "2", "0.5"}},
	}
	_, err := Normalize(tbl)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"Close"}, se.MissingColumns)
}

func TestNormalize_BadDates(t *testing.T) {
	t.Parallel()

	tbl := &model.Table{
		Columns: []string{"Date", "Open", "High", "Low", "Close"},
		Rows: [][]string{
			{"20230103", "1", "2", "0.5", "1.5"},
			{"not-a-date", "1", "2", "0.5", "1.5"},
		},
	}
	_, err := Normalize(tbl)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"not-a-date"}, se.BadDates)
}

func TestNormalize_VolumeOptional(t *testing.T) {
	t.Parallel()

	tbl := &model.Table{
		Columns: []string{"Date", "Open", "High", "Low", "Close"},
		Rows:    [][]string{{"20230103", "1", "2", "0.5", "1.5"}},
	}
	f, err := Normalize(tbl)
	require.NoError(t, err)
	assert.False(t, f.HasVolume)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	f1, err := Normalize(sampleTable())
	require.NoError(t, err)

	f2, err := Normalize(f1.Table())
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestFrameFromBars(t *testing.T) {
	t.Parallel()

	bars := []model.Bar{
		{TSCode: "600519.SH", TradeDate: "20230104", Open: 2, High: 3, Low: 1.5, Close: 2.5, Volume: 20, StockName: "贵州茅台"},
		{TSCode: "600519.SH", TradeDate: "20230103", Open: 1, High: 2, Low: 0.5, Close: 1.8, Volume: 10, StockName: "贵州茅台"},
	}
	f, err := FrameFromBars(bars)
	require.NoError(t, err)
	require.Len(t, f.Rows, 2)
	assert.Equal(t, "贵州茅台", f.Name)
	assert.Equal(t, "2023-01-03", f.Start().Format("2006-01-02"))
	assert.Equal(t, "2023-01-04", f.End().Format("2006-01-02"))
}
