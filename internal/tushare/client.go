// Package tushare implements a thin client for the Tushare Pro market-data
// API: a single POST endpoint multiplexing named calls over a JSON envelope.
package tushare

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"stockchart/internal/model"
	"stockchart/internal/symbol"
)

// DefaultBaseURL is the public Tushare Pro endpoint.
const DefaultBaseURL = "http://api.tushare.pro"

const (
	dailyFields      = "ts_code,trade_date,open,high,low,close,pre_close,change,pct_chg,vol,amount"
	stockBasicFields = "ts_code,symbol,name,area,industry,list_date,list_status"
)

// Client calls the Tushare Pro API. One blocking request per call, no
// retries; transport errors propagate to the caller.
type Client struct {
	rc    *resty.Client
	token string
}

// NewClient creates a Client for the given endpoint and token. An empty
// baseURL selects the public endpoint.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{rc: rc, token: token}
}

// Close releases client resources.
func (c *Client) Close() error { return nil }

func (c *Client) query(ctx context.Context, apiName string, params map[string]string, fields string) (*payload, error) {
	body := apiRequest{
		APIName: apiName,
		Token:   c.token,
		Params:  params,
		Fields:  fields,
	}
	var out apiResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("tushare %s: %w", apiName, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tushare %s: http %d", apiName, resp.StatusCode())
	}
	if out.Code != 0 {
		return nil, fmt.Errorf("tushare %s: api code %d: %s", apiName, out.Code, out.Msg)
	}
	if out.Data == nil {
		return nil, fmt.Errorf("tushare %s: empty payload", apiName)
	}
	return out.Data, nil
}

// StockBasic fetches the directory of listed stocks.
func (c *Client) StockBasic(ctx context.Context) (symbol.Directory, error) {
	p, err := c.query(ctx, "stock_basic", map[string]string{
		"exchange":    "",
		"list_status": "L",
	}, stockBasicFields)
	if err != nil {
		return nil, err
	}
	idx := p.index()
	dir := make(symbol.Directory, 0, len(p.Items))
	for _, item := range p.Items {
		dir = append(dir, symbol.Entry{
			TSCode:     stringAt(item, idx.col("ts_code")),
			Symbol:     stringAt(item, idx.col("symbol")),
			Name:       stringAt(item, idx.col("name")),
			Area:       stringAt(item, idx.col("area")),
			Industry:   stringAt(item, idx.col("industry")),
			ListDate:   stringAt(item, idx.col("list_date")),
			ListStatus: stringAt(item, idx.col("list_status")),
		})
	}
	return dir, nil
}

// Daily fetches daily bars for tsCode over the closed date range
// [startDate, endDate], both in YYYYMMDD form. A range with no trading data
// yields an empty slice, not an error.
func (c *Client) Daily(ctx context.Context, tsCode, startDate, endDate string) ([]model.Bar, error) {
	p, err := c.query(ctx, "daily", map[string]string{
		"ts_code":    tsCode,
		"start_date": startDate,
		"end_date":   endDate,
	}, dailyFields)
	if err != nil {
		return nil, err
	}
	idx := p.index()
	bars := make([]model.Bar, 0, len(p.Items))
	for _, item := range p.Items {
		b := model.Bar{
			TSCode:    stringAt(item, idx.col("ts_code")),
			TradeDate: stringAt(item, idx.col("trade_date")),
		}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"open", &b.Open},
			{"high", &b.High},
			{"low", &b.Low},
			{"close", &b.Close},
			{"pre_close", &b.PreClose},
			{"change", &b.Change},
			{"pct_chg", &b.PctChg},
			{"vol", &b.Volume},
			{"amount", &b.Amount},
		} {
			v, err := floatAt(item, idx.col(f.name))
			if err != nil {
				return nil, fmt.Errorf("tushare daily %s %s: %w", b.TSCode, f.name, err)
			}
			*f.dst = v
		}
		bars = append(bars, b)
	}
	return bars, nil
}
