package booking

import (
	"fmt"

	"github.com/tferraro/ticketek/internal/auth"
	"github.com/tferraro/ticketek/internal/domain"
)

// Void permanently cancels a ticket: the seat or unit returns to the show's
// pool, the ticket's price leaves the revenue ledger, and the ticket drops
// out of the buyer's active holdings while staying in the full history.
//
// A ticket whose show date has passed cannot be voided; that case reports
// (false, nil) rather than an error, unlike every other failure mode.
func (s *Service) Void(ticketID, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrTicketNotFound, ticketID)
	}
	if t.Voided {
		return false, fmt.Errorf("%w: %q", domain.ErrAlreadyVoided, ticketID)
	}

	user, ok := s.users[t.BuyerEmail]
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrUserNotFound, t.BuyerEmail)
	}
	if !auth.Verify(user.PasswordHash, password) {
		return false, domain.ErrAuthenticationFailed
	}

	if !t.Future(s.clock.Now()) {
		return false, nil
	}

	prod, ok := s.productions[t.Production]
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrProductionNotFound, t.Production)
	}
	show, ok := prod.Show(t.Date)
	if !ok {
		return false, fmt.Errorf("%w: %s on %s", domain.ErrShowNotFound, t.Production, t.Date)
	}

	if t.General() {
		show.ReleaseUnits(1)
	} else {
		if err := show.ReleaseSeat(t.Sector, t.Seat); err != nil {
			return false, err
		}
	}

	prod.Ledger.Subtract(t.Venue, t.Price)
	user.DropActive(t.ID)
	t.Void()

	s.logger.Info("ticket voided",
		"ticket", t.ID, "production", t.Production, "date", t.Date.String(), "buyer", t.BuyerEmail)
	return true, nil
}
