package tushare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRequest(t *testing.T, r *http.Request) apiRequest {
	t.Helper()
	var req apiRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestClient_Daily_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "daily", req.APIName)
		assert.Equal(t, "test-token", req.Token)
		assert.Equal(t, "000001.SZ", req.Params["ts_code"])
		assert.Equal(t, "20230101", req.Params["start_date"])
		assert.Equal(t, "20231231", req.Params["end_date"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 0,
			"msg": null,
			"data": {
				"fields": ["ts_code","trade_date","open","high","low","close","pre_close","change","pct_chg","vol","amount"],
				"items": [
					["000001.SZ","20230104",13.71,14.42,13.63,14.32,13.77,0.55,3.99,2189682.53,3088287.447],
					["000001.SZ","20230103",13.3,13.84,13.23,13.77,13.16,0.61,4.64,1223931.61,1668191.098]
				]
			}
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token")
	bars, err := c.Daily(context.Background(), "000001.SZ", "20230101", "20231231")
	require.NoError(t, err)
	require.Len(t, bars, 2)

	assert.Equal(t, "000001.SZ", bars[0].TSCode)
	assert.Equal(t, "20230104", bars[0].TradeDate)
	assert.InDelta(t, 13.71, bars[0].Open, 1e-9)
	assert.InDelta(t, 14.42, bars[0].High, 1e-9)
	assert.InDelta(t, 13.63, bars[0].Low, 1e-9)
	assert.InDelta(t, 14.32, bars[0].Close, 1e-9)
	assert.InDelta(t, 2189682.53, bars[0].Volume, 1e-9)
}

func TestClient_Daily_EmptyRange(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"msg":"","data":{"fields":["ts_code","trade_date"],"items":[]}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token")
	bars, err := c.Daily(context.Background(), "000001.SZ", "20230101", "20230102")
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestClient_Daily_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":2002,"msg":"token invalid","data":null}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "bad-token")
	_, err := c.Daily(context.Background(), "000001.SZ", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2002")
	assert.Contains(t, err.Error(), "token invalid")
}

func TestClient_Daily_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token")
	_, err := c.Daily(context.Background(), "000001.SZ", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
}

func TestClient_StockBasic(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "stock_basic", req.APIName)
		assert.Equal(t, "L", req.Params["list_status"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 0,
			"msg": "",
			"data": {
				"fields": ["ts_code","symbol","name","area","industry","list_date","list_status"],
				"items": [
					["600000.SH","600000","浦发银行","上海","银行","19991110","L"],
					["600519.SH","600519","贵州茅台","贵州","白酒","20010827","L"]
				]
			}
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token")
	dir, err := c.StockBasic(context.Background())
	require.NoError(t, err)
	require.Len(t, dir, 2)
	assert.Equal(t, "浦发银行", dir[0].Name)
	assert.Equal(t, "600519.SH", dir[1].TSCode)
	assert.Equal(t, "19991110", dir[0].ListDate)
}

func TestFieldIndex_MissingField(t *testing.T) {
	t.Parallel()

	p := &payload{Fields: []string{"ts_code"}, Items: [][]any{{"600000.SH"}}}
	idx := p.index()
	assert.Equal(t, 0, idx.col("ts_code"))
	assert.Equal(t, -1, idx.col("vol"))
	assert.Equal(t, "", stringAt(p.Items[0], idx.col("vol")))
	v, err := floatAt(p.Items[0], idx.col("vol"))
	require.NoError(t, err)
	assert.Zero(t, v)
}
