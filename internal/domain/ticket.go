package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is an immutable-after-issue record of one sale. Price is computed
// once at sale time and frozen; the venue name is a snapshot so the record
// stays readable even if lookups change. Voided flips one way and the record
// is kept for full-history listings.
type Ticket struct {
	ID         string
	Production string
	Venue      string
	Date       Date
	Sector     string
	Row        int
	Seat       int
	Price      decimal.Decimal
	BuyerEmail string
	Voided     bool
}

// NewGeneralTicket issues a general-admission ticket. Row and seat stay zero:
// a ticket carries a (row, seat) pair exactly when its sector is real.
func NewGeneralTicket(production, venue string, date Date, price decimal.Decimal, buyerEmail string) *Ticket {
	return &Ticket{
		ID:         uuid.NewString(),
		Production: production,
		Venue:      venue,
		Date:       date,
		Sector:     GeneralSector,
		Price:      price,
		BuyerEmail: buyerEmail,
	}
}

// NewSeatTicket issues a ticket for a numbered seat.
func NewSeatTicket(production, venue string, date Date, sector string, row, seat int, price decimal.Decimal, buyerEmail string) *Ticket {
	return &Ticket{
		ID:         uuid.NewString(),
		Production: production,
		Venue:      venue,
		Date:       date,
		Sector:     sector,
		Row:        row,
		Seat:       seat,
		Price:      price,
		BuyerEmail: buyerEmail,
	}
}

// General reports whether the ticket was sold from a general-admission pool.
func (t *Ticket) General() bool {
	return t.Sector == GeneralSector
}

// Future reports whether the ticket's show is still ahead of ref.
func (t *Ticket) Future(ref time.Time) bool {
	return t.Date.After(ref)
}

// Void marks the ticket permanently cancelled.
func (t *Ticket) Void() {
	t.Voided = true
}

// Location renders the seat position the way listings print it.
func (t *Ticket) Location() string {
	if t.General() {
		return GeneralSector
	}
	return fmt.Sprintf("%s r:%d s:%d", t.Sector, t.Row, t.Seat)
}

func (t *Ticket) String() string {
	date := t.Date.String()
	if t.Voided {
		date += " (voided)"
	}
	return fmt.Sprintf("%s - %s - %s - %s - %s", t.ID, t.Production, date, t.Venue, t.Location())
}
