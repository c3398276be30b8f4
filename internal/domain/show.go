package domain

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Show is one scheduled performance of a production: one venue, one calendar
// date, one base price, and the live availability copied from the venue
// template at creation. The mutex makes every check-then-reserve sequence a
// single critical section, so two concurrent buyers cannot both observe the
// same free seat.
type Show struct {
	Venue     *Venue
	Date      Date
	BasePrice decimal.Decimal

	mu    sync.Mutex
	avail *Availability
}

func NewShow(venue *Venue, date Date, basePrice decimal.Decimal) (*Show, error) {
	if venue == nil {
		return nil, fmt.Errorf("show needs a venue")
	}
	if basePrice.IsNegative() {
		return nil, fmt.Errorf("base price must not be negative")
	}
	return &Show{
		Venue:     venue,
		Date:      date,
		BasePrice: basePrice,
		avail:     venue.NewAvailability(),
	}, nil
}

func (s *Show) Numbered() bool {
	return s.Venue.Kind.Numbered()
}

// Price computes the final ticket price for a sector of this show.
func (s *Show) Price(sector string) (decimal.Decimal, error) {
	return s.Venue.PriceFor(s.BasePrice, sector)
}

// UnitsLeft reports remaining general-admission units.
func (s *Show) UnitsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail.UnitsLeft()
}

// ReserveUnits atomically checks and decrements the unit pool.
func (s *Show) ReserveUnits(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail.reserveUnits(count)
}

// ReleaseUnits returns units to the pool, always succeeding.
func (s *Show) ReleaseUnits(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.avail.releaseUnits(count)
}

// SeatAvailable reports whether a seat is currently free.
func (s *Show) SeatAvailable(sector string, seat int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail.seatFree(sector, seat)
}

// ReserveSeat marks one seat sold, failing with ErrSeatAlreadySold when it
// was taken.
func (s *Show) ReserveSeat(sector string, seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail.reserveSeat(sector, seat)
}

// ReserveSeats reserves a batch all-or-nothing: every seat is validated,
// including against repeats within the request, before the first one is
// flipped, all under one lock hold.
func (s *Show) ReserveSeats(sector string, seats []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]bool, len(seats))
	for _, seat := range seats {
		if seen[seat] {
			return fmt.Errorf("seat %d requested more than once in sector %q", seat, sector)
		}
		seen[seat] = true

		free, err := s.avail.seatFree(sector, seat)
		if err != nil {
			return err
		}
		if !free {
			return fmt.Errorf("%w: seat %d in sector %q", ErrSeatAlreadySold, seat, sector)
		}
	}
	for _, seat := range seats {
		s.avail.seats[sector][seat] = false
	}
	return nil
}

// ReleaseSeat frees a seat again; no-op when already free.
func (s *Show) ReleaseSeat(sector string, seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail.releaseSeat(sector, seat)
}

// SoldCount reports how many seats or units of the show are currently sold.
func (s *Show) SoldCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.avail.Numbered() {
		return s.avail.soldSeats()
	}
	return s.Venue.Capacity - s.avail.UnitsLeft()
}

// SeatMap returns a deep copy of the per-sector availability, for reporting.
func (s *Show) SeatMap() map[string]map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail.snapshot()
}

func (s *Show) String() string {
	return fmt.Sprintf("show at %s on %s", s.Venue.Name, s.Date)
}
