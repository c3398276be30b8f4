package domain

import (
	"sort"
	"time"
)

// User is a registered buyer. Active holds the tickets the user can still
// act on; history additionally keeps voided ones so past purchases stay
// listable. Both index by ticket ID.
type User struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte

	active  map[string]*Ticket
	history map[string]*Ticket
}

func NewUser(email, firstName, lastName string, passwordHash []byte) *User {
	return &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		active:       make(map[string]*Ticket),
		history:      make(map[string]*Ticket),
	}
}

// AddTicket records a purchase in both the active holdings and the history.
func (u *User) AddTicket(t *Ticket) {
	u.active[t.ID] = t
	u.history[t.ID] = t
}

// DropActive removes a ticket from the active holdings only; the history
// entry stays.
func (u *User) DropActive(ticketID string) {
	delete(u.active, ticketID)
}

// ActiveTicket looks a ticket up among the user's active holdings.
func (u *User) ActiveTicket(ticketID string) (*Ticket, bool) {
	t, ok := u.active[ticketID]
	return t, ok
}

// Tickets lists every ticket the user ever bought, voided ones included.
func (u *User) Tickets() []*Ticket {
	return sortTickets(u.history)
}

// ActiveTickets lists the user's non-voided holdings.
func (u *User) ActiveTickets() []*Ticket {
	return sortTickets(u.active)
}

// UpcomingTickets lists active holdings whose show date is still ahead.
func (u *User) UpcomingTickets(ref time.Time) []*Ticket {
	out := make([]*Ticket, 0, len(u.active))
	for _, t := range sortTickets(u.active) {
		if t.Future(ref) {
			out = append(out, t)
		}
	}
	return out
}

func sortTickets(m map[string]*Ticket) []*Ticket {
	out := make([]*Ticket, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (u *User) String() string {
	return u.FirstName + " " + u.LastName + " (" + u.Email + ")"
}
