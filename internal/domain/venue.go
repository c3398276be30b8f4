package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GeneralSector is the sentinel sector name used by tickets sold at
// general-admission venues, which have no real sectors.
const GeneralSector = "GENERAL"

// VenueKind distinguishes the three seating topologies. Numbered-ness is a
// fixed trait of the kind, not separately configurable.
type VenueKind int

const (
	// GeneralAdmission venues sell from one undifferentiated capacity pool.
	GeneralAdmission VenueKind = iota
	// Sectored venues have named sectors with numbered seats and a
	// percentage markup per sector.
	Sectored
	// SectoredSurcharge venues additionally charge a flat per-ticket amount,
	// covering venues with concession stands bundled into the price.
	SectoredSurcharge
)

func (k VenueKind) Numbered() bool {
	return k != GeneralAdmission
}

func (k VenueKind) String() string {
	switch k {
	case GeneralAdmission:
		return "general-admission"
	case Sectored:
		return "sectored"
	case SectoredSurcharge:
		return "sectored-surcharge"
	}
	return fmt.Sprintf("VenueKind(%d)", int(k))
}

// Sector is a named subdivision of a numbered venue. MarkupPercent is applied
// as a ratio of the show's base price, never compounded.
type Sector struct {
	Name          string
	Capacity      int
	MarkupPercent int
}

// Venue describes the static seating topology and pricing rule of a physical
// place. Venues are immutable once registered and are shared by every show
// instance scheduled at them, so nothing here mutates after NewVenue.
type Venue struct {
	Name        string
	Address     string
	Capacity    int
	Kind        VenueKind
	SeatsPerRow int
	Sectors     []Sector

	// Stands and Surcharge only apply to SectoredSurcharge venues.
	Stands    int
	Surcharge decimal.Decimal
}

// NewVenue validates the cross-field invariants of a venue configuration.
// Field-level checks (non-empty name, positive capacity) belong to the
// registration request and are validated there.
func NewVenue(v Venue) (*Venue, error) {
	if !v.Kind.Numbered() {
		if len(v.Sectors) > 0 {
			return nil, fmt.Errorf("%w: general-admission venues have no sectors", ErrInvalidVenueConfig)
		}
		return &v, nil
	}

	if v.SeatsPerRow <= 0 {
		return nil, fmt.Errorf("%w: seats per row must be positive", ErrInvalidVenueConfig)
	}
	if len(v.Sectors) == 0 {
		return nil, fmt.Errorf("%w: at least one sector is required", ErrInvalidVenueConfig)
	}

	seen := make(map[string]bool, len(v.Sectors))
	sum := 0
	for _, s := range v.Sectors {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: sector names must not be empty", ErrInvalidVenueConfig)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: duplicate sector %q", ErrInvalidVenueConfig, s.Name)
		}
		seen[s.Name] = true

		if s.Capacity < v.SeatsPerRow || s.Capacity > v.Capacity {
			return nil, fmt.Errorf("%w: sector %q capacity must be between seats per row (%d) and total capacity (%d)",
				ErrInvalidVenueConfig, s.Name, v.SeatsPerRow, v.Capacity)
		}
		if s.MarkupPercent < 0 {
			return nil, fmt.Errorf("%w: sector %q markup must not be negative", ErrInvalidVenueConfig, s.Name)
		}
		sum += s.Capacity
	}
	if sum != v.Capacity {
		return nil, fmt.Errorf("%w: sector capacities sum to %d, total capacity is %d",
			ErrInvalidVenueConfig, sum, v.Capacity)
	}

	if v.Kind == SectoredSurcharge {
		if v.Stands < 0 {
			return nil, fmt.Errorf("%w: stand count must not be negative", ErrInvalidVenueConfig)
		}
		if v.Surcharge.IsNegative() {
			return nil, fmt.Errorf("%w: surcharge must not be negative", ErrInvalidVenueConfig)
		}
	}

	return &v, nil
}

func (v *Venue) sector(name string) (Sector, bool) {
	for _, s := range v.Sectors {
		if s.Name == name {
			return s, true
		}
	}
	return Sector{}, false
}

// PriceFor computes the final per-ticket price for a sector at the given base
// price. General-admission venues charge the base price regardless of sector.
func (v *Venue) PriceFor(base decimal.Decimal, sectorName string) (decimal.Decimal, error) {
	if !v.Kind.Numbered() {
		return base, nil
	}

	s, ok := v.sector(sectorName)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q at %s", ErrSectorNotFound, sectorName, v.Name)
	}

	price := base.Add(base.Mul(decimal.NewFromInt(int64(s.MarkupPercent))).Div(decimal.NewFromInt(100)))
	if v.Kind == SectoredSurcharge {
		price = price.Add(v.Surcharge)
	}
	return price, nil
}

// SectorCapacity reports the seat count of a sector. General-admission venues
// report total capacity for any sector name.
func (v *Venue) SectorCapacity(sectorName string) (int, error) {
	if !v.Kind.Numbered() {
		return v.Capacity, nil
	}

	s, ok := v.sector(sectorName)
	if !ok {
		return 0, fmt.Errorf("%w: %q at %s", ErrSectorNotFound, sectorName, v.Name)
	}
	return s.Capacity, nil
}

// NewAvailability builds the independent mutable seat state a show instance
// starts from. Each call returns a fresh copy: the venue template must never
// be touched by a sale.
func (v *Venue) NewAvailability() *Availability {
	if !v.Kind.Numbered() {
		return newUnitPool(v.Capacity)
	}
	return newSeatMap(v.Sectors)
}

// RowOf derives the row a numbered seat sits in.
func (v *Venue) RowOf(seat int) int {
	return (seat-1)/v.SeatsPerRow + 1
}

func (v *Venue) String() string {
	if !v.Kind.Numbered() {
		return fmt.Sprintf("%s (%s) - capacity %d", v.Name, v.Address, v.Capacity)
	}
	return fmt.Sprintf("%s (%s) - capacity %d, %d sectors, %d seats per row",
		v.Name, v.Address, v.Capacity, len(v.Sectors), v.SeatsPerRow)
}
