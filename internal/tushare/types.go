package tushare

import (
	"fmt"
	"strconv"
)

// apiRequest is the envelope the Tushare Pro endpoint expects: every call is
// a POST with the API name, the auth token, call params and a field list.
type apiRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params"`
	Fields  string            `json:"fields,omitempty"`
}

// apiResponse is the envelope every Tushare Pro call returns. Code 0 means
// success; anything else carries a human-readable message in Msg.
type apiResponse struct {
	Code int      `json:"code"`
	Msg  string   `json:"msg"`
	Data *payload `json:"data"`
}

// payload is columnar: a field-name header plus rows of heterogeneous values.
type payload struct {
	Fields []string `json:"fields"`
	Items  [][]any  `json:"items"`
}

// index maps field name to column position. Missing fields map to -1 so the
// accessors below return zero values instead of misreading column 0.
type fieldIndex map[string]int

func (p *payload) index() fieldIndex {
	m := make(fieldIndex, len(p.Fields))
	for i, f := range p.Fields {
		m[f] = i
	}
	return m
}

func (fi fieldIndex) col(name string) int {
	if i, ok := fi[name]; ok {
		return i
	}
	return -1
}

// stringAt returns the string value of column i, "" for nil or out of range.
func stringAt(item []any, i int) string {
	if i < 0 || i >= len(item) || item[i] == nil {
		return ""
	}
	switch v := item[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// floatAt returns the numeric value of column i, 0 for nil or out of range.
func floatAt(item []any, i int) (float64, error) {
	if i < 0 || i >= len(item) || item[i] == nil {
		return 0, nil
	}
	switch v := item[i].(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("parse number %q: %w", v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unexpected value %v (%T)", item[i], item[i])
	}
}
