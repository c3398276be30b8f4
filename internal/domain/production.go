package domain

import (
	"fmt"
	"sort"
)

// Production is a named show (the artistic work), owning its scheduled
// instances by date and the revenue collected across all of them.
type Production struct {
	Name   string
	Ledger *RevenueLedger

	shows map[Date]*Show
}

func NewProduction(name string) *Production {
	return &Production{
		Name:   name,
		Ledger: NewRevenueLedger(),
		shows:  make(map[Date]*Show),
	}
}

// AddShow registers a show instance for a date. One instance per date.
func (p *Production) AddShow(show *Show) error {
	if _, ok := p.shows[show.Date]; ok {
		return fmt.Errorf("%w: %s on %s", ErrDuplicateShowDate, p.Name, show.Date)
	}
	p.shows[show.Date] = show
	return nil
}

func (p *Production) Show(date Date) (*Show, bool) {
	s, ok := p.shows[date]
	return s, ok
}

// Shows returns the scheduled instances ordered by date.
func (p *Production) Shows() []*Show {
	out := make([]*Show, 0, len(p.shows))
	for _, s := range p.shows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// HostsOn reports whether any instance of this production uses the venue on
// the given date.
func (p *Production) HostsOn(venue string, date Date) bool {
	s, ok := p.shows[date]
	return ok && s.Venue.Name == venue
}
