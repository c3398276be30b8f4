package booking

import (
	"fmt"

	"github.com/tferraro/ticketek/internal/domain"
)

// SellGeneral sells count units of a general-admission show. The pool is
// decremented atomically before the first ticket is minted, so an
// insufficient pool mutates nothing.
func (s *Service) SellGeneral(production string, date domain.Date, email, password string, count int) ([]*domain.Ticket, error) {
	if count <= 0 {
		return nil, fmt.Errorf("ticket count must be positive, got %d", count)
	}

	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}

	prod, show, err := s.resolveShow(production, date)
	if err != nil {
		return nil, err
	}
	if !show.Date.After(s.clock.Now()) {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrShowAlreadyOccurred, production, date)
	}

	price, err := show.Price(domain.GeneralSector)
	if err != nil {
		return nil, err
	}

	if err := show.ReserveUnits(count); err != nil {
		return nil, err
	}

	tickets := make([]*domain.Ticket, 0, count)

	s.mu.Lock()
	for i := 0; i < count; i++ {
		t := domain.NewGeneralTicket(production, show.Venue.Name, date, price, email)
		user.AddTicket(t)
		s.tickets[t.ID] = t
		tickets = append(tickets, t)
		prod.Ledger.Add(show.Venue.Name, price)
	}
	s.mu.Unlock()

	s.logger.Info("tickets sold",
		"production", production, "date", date.String(), "buyer", email, "count", count, "price", price.String())
	return tickets, nil
}

// SellSeats sells specific numbered seats in one sector. The whole batch is
// reserved atomically before the first ticket is minted, so a rejected batch
// mutates nothing.
func (s *Service) SellSeats(production string, date domain.Date, email, password, sector string, seats []int) ([]*domain.Ticket, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("at least one seat is required")
	}

	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}

	prod, show, err := s.resolveShow(production, date)
	if err != nil {
		return nil, err
	}
	if !show.Date.After(s.clock.Now()) {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrShowAlreadyOccurred, production, date)
	}

	price, err := show.Price(sector)
	if err != nil {
		return nil, err
	}

	if err := show.ReserveSeats(sector, seats); err != nil {
		return nil, err
	}

	tickets := make([]*domain.Ticket, 0, len(seats))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seat := range seats {
		row := show.Venue.RowOf(seat)
		t := domain.NewSeatTicket(production, show.Venue.Name, date, sector, row, seat, price, email)

		user.AddTicket(t)
		s.tickets[t.ID] = t
		tickets = append(tickets, t)
		prod.Ledger.Add(show.Venue.Name, price)
	}

	s.logger.Info("seats sold",
		"production", production, "date", date.String(), "buyer", email, "sector", sector, "seats", len(seats), "price", price.String())
	return tickets, nil
}
