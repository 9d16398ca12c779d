package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// FromCSV reads a headered CSV document into a frame. Columns whose every
// value parses as a float become numeric series; everything else becomes a
// string series.
func FromCSV(r io.Reader) (*DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: missing header row")
	}
	header := records[0]
	body := records[1:]

	cols := make([]Series, len(header))
	for c, name := range header {
		raw := make([]string, len(body))
		for r, rec := range body {
			raw[r] = rec[c]
		}
		if vals, ok := parseFloats(raw); ok {
			cols[c] = NewSeriesFloat64(name, vals)
		} else {
			cols[c] = NewSeriesString(name, raw)
		}
	}
	return NewDataFrame(cols...)
}

func parseFloats(raw []string) ([]float64, bool) {
	vals := make([]float64, len(raw))
	for i, s := range raw {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = f
	}
	return vals, len(raw) > 0
}
