// Package markethours enforces the exchange trading window for order entry.
package markethours

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30).
var IST = time.FixedZone("IST", 5*3600+30*60)

// Default NSE equity window.
const (
	OpenHour    = 9
	OpenMinute  = 15
	CloseHour   = 15
	CloseMinute = 15
)

var ErrMarketClosed = errors.New("market is closed")

// Policy decides whether an order submitted at a given time is accepted.
// Bypass allows after-hours orders for testing; every bypassed order is
// logged so the override never passes silently.
type Policy struct {
	Location    *time.Location
	OpenMinute  int // minutes from midnight
	CloseMinute int
	Bypass      bool
}

// Default returns the standard 09:15-15:15 IST policy.
func Default() Policy {
	return Policy{
		Location:    IST,
		OpenMinute:  OpenHour*60 + OpenMinute,
		CloseMinute: CloseHour*60 + CloseMinute,
	}
}

// IsOpen reports whether t falls inside the trading window on a weekday.
func (p Policy) IsOpen(t time.Time) bool {
	loc := p.Location
	if loc == nil {
		loc = IST
	}
	local := t.In(loc)
	wd := local.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	hm := local.Hour()*60 + local.Minute()
	return hm >= p.OpenMinute && hm <= p.CloseMinute
}

// Allow returns nil when an order at time t may proceed. Outside the window
// it returns ErrMarketClosed unless Bypass is set, in which case the order is
// allowed and the bypass is logged.
func (p Policy) Allow(t time.Time) error {
	if p.IsOpen(t) {
		return nil
	}
	if p.Bypass {
		log.Printf("markethours: market closed at %s, order allowed by bypass",
			t.In(p.loc()).Format("15:04"))
		return nil
	}
	return fmt.Errorf("%w: orders accepted %s-%s only",
		ErrMarketClosed, p.windowStart(), p.windowEnd())
}

func (p Policy) loc() *time.Location {
	if p.Location == nil {
		return IST
	}
	return p.Location
}

func (p Policy) windowStart() string {
	return fmt.Sprintf("%02d:%02d", p.OpenMinute/60, p.OpenMinute%60)
}

func (p Policy) windowEnd() string {
	return fmt.Sprintf("%02d:%02d", p.CloseMinute/60, p.CloseMinute%60)
}
