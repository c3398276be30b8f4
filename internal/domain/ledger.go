package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// RevenueLedger tracks money collected for one production, broken down by
// venue name. The invariant total == sum(per-venue) holds after every
// mutation because Add and Subtract touch both sides under the same lock.
type RevenueLedger struct {
	mu      sync.Mutex
	total   decimal.Decimal
	byVenue map[string]decimal.Decimal
}

func NewRevenueLedger() *RevenueLedger {
	return &RevenueLedger{
		total:   decimal.Zero,
		byVenue: make(map[string]decimal.Decimal),
	}
}

// Add records money collected at a venue.
func (l *RevenueLedger) Add(venue string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byVenue[venue] = l.byVenue[venue].Add(amount)
	l.total = l.total.Add(amount)
}

// Subtract reverses a collection, the exact inverse of Add.
func (l *RevenueLedger) Subtract(venue string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byVenue[venue] = l.byVenue[venue].Sub(amount)
	l.total = l.total.Sub(amount)
}

func (l *RevenueLedger) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// ByVenue reports the running total for one venue, zero when the venue never
// collected anything.
func (l *RevenueLedger) ByVenue(venue string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.byVenue[venue]
}
