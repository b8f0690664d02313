package saver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockchart/internal/model"
)

func sampleBars() []model.Bar {
	return []model.Bar{
		{TSCode: "600519.SH", TradeDate: "20230103", Open: 1750, High: 1810, Low: 1740, Close: 1800, PreClose: 1720, Change: 80, PctChg: 4.65, Volume: 25000, Amount: 44500000, StockName: "贵州茅台"},
		{TSCode: "600519.SH", TradeDate: "20230104", Open: 1800, High: 1820, Low: 1770, Close: 1795, PreClose: 1800, Change: -5, PctChg: -0.28, Volume: 28000, Amount: 50260000, StockName: "贵州茅台"},
	}
}

func TestCSVSaver_WritesBOMAndHeader(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, CSVSaver{}.Save(sampleBars(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, utf8BOM))

	lines := bytes.Split(bytes.TrimPrefix(data, utf8BOM), []byte("\n"))
	assert.Equal(t, "ts_code,trade_date,open,high,low,close,pre_close,change,pct_chg,vol,amount,stock_name", string(lines[0]))
}

func TestCSVSaver_ReadBack(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")
	bars := sampleBars()

	require.NoError(t, CSVSaver{}.Save(bars, path))

	table, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, model.BarColumns(), table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "600519.SH", table.Rows[0][0])
	assert.Equal(t, "20230103", table.Rows[0][1])
	assert.Equal(t, "1750", table.Rows[0][2])
	assert.Equal(t, "贵州茅台", table.Rows[0][11])
}

func TestReadCSV_ForeignHeader(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "foreign.csv")
	content := "Date,Open,High,Low,Close,Volume\n2023-01-03,10,11,9,10.5,1000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Open", "High", "Low", "Close", "Volume"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2023-01-03", table.Rows[0][0])
}

func TestReadCSV_Missing(t *testing.T) {
	t.Parallel()
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestNewSeriesSaver(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format string
		ext    string
	}{
		{"csv", "csv"},
		{"json", "json"},
		{"parquet", "parquet"},
	}
	for _, tc := range cases {
		s := NewSeriesSaver(tc.format)
		require.NotNil(t, s, tc.format)
		assert.Equal(t, tc.ext, s.Extension())
	}
	assert.Nil(t, NewSeriesSaver("xlsx"))
}
