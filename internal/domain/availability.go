package domain

import "fmt"

// Availability is the live seat state of a single show instance. It holds
// either a unit count (general admission) or per-sector seat maps, never
// both. Not safe for concurrent use on its own; Show serializes access.
type Availability struct {
	numbered bool
	units    int
	seats    map[string]map[int]bool // sector -> seat number -> still free
}

func newUnitPool(capacity int) *Availability {
	return &Availability{units: capacity}
}

func newSeatMap(sectors []Sector) *Availability {
	seats := make(map[string]map[int]bool, len(sectors))
	for _, s := range sectors {
		m := make(map[int]bool, s.Capacity)
		for n := 1; n <= s.Capacity; n++ {
			m[n] = true
		}
		seats[s.Name] = m
	}
	return &Availability{numbered: true, seats: seats}
}

func (a *Availability) Numbered() bool {
	return a.numbered
}

// UnitsLeft reports the remaining general-admission units, zero for numbered
// availability.
func (a *Availability) UnitsLeft() int {
	return a.units
}

func (a *Availability) reserveUnits(count int) error {
	if a.numbered {
		return fmt.Errorf("%w: unit reservation needs a general-admission venue", ErrWrongVenueKind)
	}
	if count > a.units {
		return fmt.Errorf("%w: only %d left", ErrInsufficientInventory, a.units)
	}
	a.units -= count
	return nil
}

// releaseUnits returns units to the pool. No upper clamp is applied; callers
// only release what they previously reserved.
func (a *Availability) releaseUnits(count int) {
	if a.numbered {
		return
	}
	a.units += count
}

func (a *Availability) sectorSeats(sector string) (map[int]bool, error) {
	if !a.numbered {
		return nil, fmt.Errorf("%w: seat reservation needs a numbered venue", ErrWrongVenueKind)
	}
	m, ok := a.seats[sector]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectorNotFound, sector)
	}
	return m, nil
}

func (a *Availability) seatFree(sector string, seat int) (bool, error) {
	m, err := a.sectorSeats(sector)
	if err != nil {
		return false, err
	}
	if seat <= 0 || seat > len(m) {
		return false, fmt.Errorf("%w: seat %d, sector %q holds 1..%d", ErrSeatOutOfRange, seat, sector, len(m))
	}
	return m[seat], nil
}

func (a *Availability) reserveSeat(sector string, seat int) error {
	free, err := a.seatFree(sector, seat)
	if err != nil {
		return err
	}
	if !free {
		return fmt.Errorf("%w: seat %d in sector %q", ErrSeatAlreadySold, seat, sector)
	}
	a.seats[sector][seat] = false
	return nil
}

// releaseSeat marks a seat free again. Releasing an already-free seat is a
// no-op.
func (a *Availability) releaseSeat(sector string, seat int) error {
	if _, err := a.seatFree(sector, seat); err != nil {
		return err
	}
	a.seats[sector][seat] = true
	return nil
}

// soldSeats counts seats currently marked sold across all sectors.
func (a *Availability) soldSeats() int {
	sold := 0
	for _, m := range a.seats {
		for _, free := range m {
			if !free {
				sold++
			}
		}
	}
	return sold
}

// snapshot returns a deep copy of the seat maps, for read-only reporting.
func (a *Availability) snapshot() map[string]map[int]bool {
	out := make(map[string]map[int]bool, len(a.seats))
	for sector, m := range a.seats {
		c := make(map[int]bool, len(m))
		for seat, free := range m {
			c[seat] = free
		}
		out[sector] = c
	}
	return out
}
