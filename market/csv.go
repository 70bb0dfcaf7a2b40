package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{"time", "open", "high", "low", "close", "volume"}

// LoadCandlesCSV reads a candle dataset from a CSV file with the header
// time,open,high,low,close,volume. Timestamps are RFC3339 or unix seconds.
func LoadCandlesCSV(path string) ([]Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var candles []Candle
	for i, row := range rows {
		if len(row) < 6 {
			return nil, fmt.Errorf("%s line %d: expected 6 columns, got %d", path, i+1, len(row))
		}
		if i == 0 && row[0] == "time" {
			continue
		}

		ts, err := parseTime(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}

		var vals [5]float64
		for j := 1; j < 6; j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: bad %s %q", path, i+1, csvHeader[j], row[j])
			}
			vals[j-1] = v
		}

		candles = append(candles, Candle{
			Time:   ts,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}

	if err := ValidateSeries(candles); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return candles, nil
}

// WriteCandlesCSV writes a candle series in the format LoadCandlesCSV reads.
func WriteCandlesCSV(path string, candles []Candle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range candles {
		row := []string{
			c.Time.UTC().Format(time.RFC3339),
			strconv.FormatFloat(c.Open, 'f', -1, 64),
			strconv.FormatFloat(c.High, 'f', -1, 64),
			strconv.FormatFloat(c.Low, 'f', -1, 64),
			strconv.FormatFloat(c.Close, 'f', -1, 64),
			strconv.FormatFloat(c.Volume, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("bad timestamp %q", s)
}
