// Package booking orchestrates sales, voids and exchanges across the venue
// catalog, per-show availability, ticket records and revenue ledgers.
package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/tferraro/ticketek/internal/auth"
	"github.com/tferraro/ticketek/internal/clock"
	"github.com/tferraro/ticketek/internal/domain"
	appvalidator "github.com/tferraro/ticketek/internal/validator"
)

// Service owns the catalog: venues, productions (with their shows and
// ledgers), users and the ticket index. Shows guard their own availability;
// the service mutex guards the catalog maps, so one instance may be shared
// by concurrent callers.
type Service struct {
	logger   *slog.Logger
	validate *validator.Validate
	clock    clock.Clock

	mu          sync.RWMutex
	venues      map[string]*domain.Venue
	productions map[string]*domain.Production
	users       map[string]*domain.User
	tickets     map[string]*domain.Ticket
}

func NewService(logger *slog.Logger, clk clock.Clock) *Service {
	return &Service{
		logger:      logger,
		validate:    appvalidator.NewValidator(),
		clock:       clk,
		venues:      make(map[string]*domain.Venue),
		productions: make(map[string]*domain.Production),
		users:       make(map[string]*domain.User),
		tickets:     make(map[string]*domain.Ticket),
	}
}

// VenueRegistration is the request to register a venue. Sector fields only
// apply to numbered kinds, stands and surcharge only to SectoredSurcharge.
type VenueRegistration struct {
	Name        string               `validate:"required"`
	Address     string               `validate:"required"`
	Kind        domain.VenueKind     `validate:"venue_kind"`
	Capacity    int                  `validate:"required,gt=0"`
	SeatsPerRow int                  `validate:"gte=0"`
	Sectors     []SectorRegistration `validate:"dive"`
	Stands      int                  `validate:"gte=0"`
	Surcharge   decimal.Decimal
}

type SectorRegistration struct {
	Name          string `validate:"sector_name"`
	Capacity      int    `validate:"required,gt=0"`
	MarkupPercent int    `validate:"gte=0"`
}

// RegisterVenue adds a venue to the catalog. Registration is all-or-nothing:
// a failed validation leaves the catalog untouched.
func (s *Service) RegisterVenue(reg VenueRegistration) (*domain.Venue, error) {
	if err := s.validate.Struct(reg); err != nil {
		return nil, invalidConfig(err)
	}

	sectors := make([]domain.Sector, len(reg.Sectors))
	for i, sec := range reg.Sectors {
		sectors[i] = domain.Sector{Name: sec.Name, Capacity: sec.Capacity, MarkupPercent: sec.MarkupPercent}
	}

	venue, err := domain.NewVenue(domain.Venue{
		Name:        reg.Name,
		Address:     reg.Address,
		Capacity:    reg.Capacity,
		Kind:        reg.Kind,
		SeatsPerRow: reg.SeatsPerRow,
		Sectors:     sectors,
		Stands:      reg.Stands,
		Surcharge:   reg.Surcharge,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[venue.Name]; ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateVenue, venue.Name)
	}
	s.venues[venue.Name] = venue

	s.logger.Info("venue registered", "venue", venue.Name, "kind", venue.Kind.String(), "capacity", venue.Capacity)
	return venue, nil
}

type userRegistration struct {
	Email     string `validate:"required,email"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Password  string `validate:"required,min=6"`
}

// RegisterUser adds a buyer. The password is hashed immediately and the
// plaintext discarded.
func (s *Service) RegisterUser(email, firstName, lastName, password string) error {
	reg := userRegistration{Email: email, FirstName: firstName, LastName: lastName, Password: password}
	if err := s.validate.Struct(reg); err != nil {
		return invalidRequest(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateUser, email)
	}
	s.users[email] = domain.NewUser(email, firstName, lastName, hash)

	s.logger.Info("user registered", "email", email)
	return nil
}

// RegisterProduction adds a production with an empty schedule.
func (s *Service) RegisterProduction(name string) error {
	if name == "" {
		return fmt.Errorf("production name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.productions[name]; ok {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateProduction, name)
	}
	s.productions[name] = domain.NewProduction(name)

	s.logger.Info("production registered", "production", name)
	return nil
}

// ScheduleShow creates the show instance binding a production, a venue and a
// date. A venue hosts at most one show per date, across every production.
func (s *Service) ScheduleShow(production string, date domain.Date, venueName string, basePrice decimal.Decimal) (*domain.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prod, ok := s.productions[production]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProductionNotFound, production)
	}
	venue, ok := s.venues[venueName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrVenueNotFound, venueName)
	}

	for _, p := range s.productions {
		if p.HostsOn(venueName, date) {
			return nil, fmt.Errorf("%w: %s on %s", domain.ErrDuplicateShowDate, venueName, date)
		}
	}

	show, err := domain.NewShow(venue, date, basePrice)
	if err != nil {
		return nil, err
	}
	if err := prod.AddShow(show); err != nil {
		return nil, err
	}

	s.logger.Info("show scheduled", "production", production, "venue", venueName, "date", date.String())
	return show, nil
}

// authenticate resolves a buyer and verifies the credential. Callers must
// not hold the service mutex.
func (s *Service) authenticate(email, password string) (*domain.User, error) {
	s.mu.RLock()
	user, ok := s.users[email]
	s.mu.RUnlock()

	if !ok || !auth.Verify(user.PasswordHash, password) {
		return nil, domain.ErrAuthenticationFailed
	}
	return user, nil
}

// resolveShow finds the show instance of a production on a date. Read lock
// only; the show's own mutex guards its availability.
func (s *Service) resolveShow(production string, date domain.Date) (*domain.Production, *domain.Show, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prod, ok := s.productions[production]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrProductionNotFound, production)
	}
	show, ok := prod.Show(date)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s on %s", domain.ErrShowNotFound, production, date)
	}
	return prod, show, nil
}

func invalidConfig(err error) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidVenueConfig, validationDetail(err))
}

func invalidRequest(err error) error {
	return fmt.Errorf("invalid request: %s", validationDetail(err))
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("%s %s", fe.Field(), appvalidator.ValidationMessage(fe))
	}
	return err.Error()
}
