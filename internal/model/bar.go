package model

// Bar represents one daily OHLCV bar for a single ticker.
// Shared between provider, saver and serialization (csv, json, parquet).
// Field names mirror the Tushare daily endpoint so CSV files round-trip
// with the original column names.
type Bar struct {
	TSCode    string  `json:"ts_code" parquet:"ts_code"`
	TradeDate string  `json:"trade_date" parquet:"trade_date"` // YYYYMMDD
	Open      float64 `json:"open" parquet:"open"`
	High      float64 `json:"high" parquet:"high"`
	Low       float64 `json:"low" parquet:"low"`
	Close     float64 `json:"close" parquet:"close"`
	PreClose  float64 `json:"pre_close" parquet:"pre_close"`
	Change    float64 `json:"change" parquet:"change"`
	PctChg    float64 `json:"pct_chg" parquet:"pct_chg"`
	Volume    float64 `json:"vol" parquet:"vol"`       // lots of 100 shares
	Amount    float64 `json:"amount" parquet:"amount"` // thousands of CNY
	StockName string  `json:"stock_name,omitempty" parquet:"stock_name,optional"`
}
