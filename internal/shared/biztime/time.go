// Package biztime provides utilities for business timezone calculations.
// Timestamps are stored in UTC. The business timezone only decides calendar
// boundaries such as "today" or "this month".
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Jakarta"
)

var (
	bizLocation *time.Location
	bizMu       sync.RWMutex
	// nowFunc is replaced in tests to pin the clock.
	nowFunc = time.Now
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	bizMu.Lock()
	bizLocation = loc
	bizMu.Unlock()
	return nil
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(err)
	}
}

// Location returns the business timezone location, initializing the default
// on first use.
func Location() *time.Location {
	bizMu.RLock()
	loc := bizLocation
	bizMu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return nowFunc().UTC()
}

// Today returns the current calendar date in the business timezone.
func Today() Date {
	return DateOf(nowFunc().In(Location()))
}

// StartOfMonth returns the first calendar day of the given month.
func StartOfMonth(year int, month time.Month) Date {
	return NewDate(year, month, 1)
}

// EndOfMonth returns the last calendar day of the given month.
func EndOfMonth(year int, month time.Month) Date {
	return NewDate(year, month+1, 0)
}

// SetNowFunc pins the clock and returns a function restoring the previous one.
func SetNowFunc(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}
