package booking

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tferraro/ticketek/internal/domain"
)

// BasePriceQuote reports the base price of a show, before any sector markup.
func (s *Service) BasePriceQuote(production string, date domain.Date) (decimal.Decimal, error) {
	_, show, err := s.resolveShow(production, date)
	if err != nil {
		return decimal.Zero, err
	}
	return show.BasePrice, nil
}

// PriceQuote reports the final per-ticket price of a sector for a show.
func (s *Service) PriceQuote(production string, date domain.Date, sector string) (decimal.Decimal, error) {
	_, show, err := s.resolveShow(production, date)
	if err != nil {
		return decimal.Zero, err
	}
	return show.Price(sector)
}

// Revenue reports the total collected for a production across all venues.
func (s *Service) Revenue(production string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prod, ok := s.productions[production]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrProductionNotFound, production)
	}
	return prod.Ledger.Total(), nil
}

// VenueRevenue reports the production's running total at one venue.
func (s *Service) VenueRevenue(production, venue string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prod, ok := s.productions[production]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrProductionNotFound, production)
	}
	return prod.Ledger.ByVenue(venue), nil
}

// UserTickets lists every ticket the buyer ever bought, voided included.
func (s *Service) UserTickets(email string) ([]*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, email)
	}
	return user.Tickets(), nil
}

// UpcomingUserTickets lists the buyer's active tickets for future shows.
func (s *Service) UpcomingUserTickets(email string) ([]*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, email)
	}
	return user.UpcomingTickets(s.clock.Now()), nil
}

// ProductionTickets lists the active (non-voided) tickets sold for a
// production, across all buyers.
func (s *Service) ProductionTickets(production string) []*domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Ticket
	for _, user := range s.users {
		for _, t := range user.ActiveTickets() {
			if t.Production == production {
				out = append(out, t)
			}
		}
	}
	return out
}

// ShowSummaries renders one line per scheduled show of a production: sold
// versus capacity for general admission, a marker for numbered venues.
func (s *Service) ShowSummaries(production string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prod, ok := s.productions[production]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProductionNotFound, production)
	}

	var out []string
	for _, show := range prod.Shows() {
		if show.Numbered() {
			out = append(out, fmt.Sprintf("(%s) %s - numbered venue", show.Date, show.Venue.Name))
			continue
		}
		out = append(out, fmt.Sprintf("(%s) %s - %d / %d", show.Date, show.Venue.Name, show.SoldCount(), show.Venue.Capacity))
	}
	return out, nil
}

// VenueInfo renders the catalog entry for one venue.
func (s *Service) VenueInfo(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venue, ok := s.venues[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrVenueNotFound, name)
	}
	return venue.String(), nil
}
