package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// ExportOrdersCSV writes the order log to path, newest first.
func ExportOrdersCSV(path string, orders []Order) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"order_id", "symbol", "side", "qty", "price", "status", "time"}); err != nil {
		return err
	}
	for _, o := range orders {
		if err := w.Write([]string{
			o.OrderID, o.Symbol, o.Side,
			fmtF(o.Quantity), fmtF(o.Price),
			o.Status, o.Time.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ExportTradesCSV writes the trade log to path, newest first.
func ExportTradesCSV(path string, trades []Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"trade_id", "order_id", "symbol", "side", "qty", "price", "time"}); err != nil {
		return err
	}
	for _, t := range trades {
		if err := w.Write([]string{
			t.TradeID, t.OrderID, t.Symbol, t.Side,
			fmtF(t.Quantity), fmtF(t.Price),
			t.Time.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
