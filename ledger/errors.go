package ledger

import (
	"fmt"

	"github.com/rustyeddy/papertrade/markethours"
)

// ErrMarketClosed is returned for orders submitted outside the trading
// window without an explicit bypass. Match with errors.Is.
var ErrMarketClosed = markethours.ErrMarketClosed

// InsufficientFundsError rejects an order whose notional exceeds available
// cash. It carries both amounts so callers can report the shortfall.
type InsufficientFundsError struct {
	Required  float64
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %.2f, available %.2f",
		e.Required, e.Available)
}
