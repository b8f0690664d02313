package saver

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"stockchart/internal/model"
)

// utf8BOM marks CSV output as UTF-8 so spreadsheet tools decode CJK stock
// names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSaver saves a series as CSV with a UTF-8 BOM and the original Tushare
// column names in the header.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(model.BarColumns()); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write(b.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV loads a delimited file back into a loose table. It accepts both
// files written by CSVSaver (lower-case Tushare names) and pre-existing
// Date/OHLCV-named files; normalization happens downstream.
func ReadCSV(path string) (*model.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return &model.Table{}, nil
	}
	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return &model.Table{Columns: header, Rows: records[1:]}, nil
}
