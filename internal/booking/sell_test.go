package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/tferraro/ticketek/internal/clock"
	"github.com/tferraro/ticketek/internal/domain"
)

type SellTestSuite struct {
	suite.Suite
	svc *Service
}

func (s *SellTestSuite) SetupTest() {
	s.svc = newSeededService(s.T(), clock.NewFixed(testNow))
}

func TestSellSuite(t *testing.T) {
	suite.Run(t, new(SellTestSuite))
}

func (s *SellTestSuite) fieldDate() domain.Date { return date(s.T(), "31/12/2030") }
func (s *SellTestSuite) rexDate() domain.Date   { return date(s.T(), "15/01/2031") }

func (s *SellTestSuite) TestSellGeneral() {
	tickets, err := s.svc.SellGeneral(prodName, s.fieldDate(), anaEmail, anaPass, 3)
	s.Require().NoError(err)
	s.Len(tickets, 3)

	for _, t := range tickets {
		s.Equal(domain.GeneralSector, t.Sector)
		s.Zero(t.Seat)
		s.Zero(t.Row)
		s.True(t.Price.Equal(decimal.NewFromInt(1000)))
		s.Equal(anaEmail, t.BuyerEmail)
		s.False(t.Voided)
	}

	_, show, err := s.svc.resolveShow(prodName, s.fieldDate())
	s.Require().NoError(err)
	s.Equal(97, show.UnitsLeft())

	total, err := s.svc.Revenue(prodName)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.NewFromInt(3000)), "3 * 1000, got %s", total)

	venueTotal, err := s.svc.VenueRevenue(prodName, fieldVenue)
	s.Require().NoError(err)
	s.True(venueTotal.Equal(total))
}

func (s *SellTestSuite) TestSellGeneralFailures() {
	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "should fail with a bad credential",
			run: func() error {
				_, err := s.svc.SellGeneral(prodName, s.fieldDate(), anaEmail, "nope", 1)
				return err
			},
			wantErr: domain.ErrAuthenticationFailed,
		},
		{
			name: "should fail for an unknown buyer",
			run: func() error {
				_, err := s.svc.SellGeneral(prodName, s.fieldDate(), "who@example.com", anaPass, 1)
				return err
			},
			wantErr: domain.ErrAuthenticationFailed,
		},
		{
			name: "should fail for an unknown production",
			run: func() error {
				_, err := s.svc.SellGeneral("Nope", s.fieldDate(), anaEmail, anaPass, 1)
				return err
			},
			wantErr: domain.ErrProductionNotFound,
		},
		{
			name: "should fail for a date with no show",
			run: func() error {
				_, err := s.svc.SellGeneral(prodName, date(s.T(), "01/04/2031"), anaEmail, anaPass, 1)
				return err
			},
			wantErr: domain.ErrShowNotFound,
		},
		{
			name: "should fail on a numbered venue",
			run: func() error {
				_, err := s.svc.SellGeneral(prodName, s.rexDate(), anaEmail, anaPass, 1)
				return err
			},
			wantErr: domain.ErrWrongVenueKind,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.ErrorIs(tt.run(), tt.wantErr)

			total, err := s.svc.Revenue(prodName)
			s.Require().NoError(err)
			s.True(total.IsZero(), "a failed sale must not collect revenue")
		})
	}
}

func (s *SellTestSuite) TestSellGeneralRejectsPastShow() {
	clk := &fakeClock{now: testNow}
	svc := newSeededService(s.T(), clk)

	clk.Set(date(s.T(), "01/01/2031").Time())

	_, err := svc.SellGeneral(prodName, s.fieldDate(), anaEmail, anaPass, 1)
	s.ErrorIs(err, domain.ErrShowAlreadyOccurred)
}

func (s *SellTestSuite) TestSellGeneralSellsOut() {
	_, err := s.svc.SellGeneral(prodName, s.fieldDate(), anaEmail, anaPass, 100)
	s.Require().NoError(err)

	_, err = s.svc.SellGeneral(prodName, s.fieldDate(), brunoEmail, brunoPass, 1)
	s.ErrorIs(err, domain.ErrInsufficientInventory)
	s.ErrorContains(err, "0", "the error carries the remaining count")

	_, show, err := s.svc.resolveShow(prodName, s.fieldDate())
	s.Require().NoError(err)
	s.Equal(0, show.UnitsLeft())

	tickets, err := s.svc.UserTickets(brunoEmail)
	s.Require().NoError(err)
	s.Empty(tickets, "no ticket is minted on a rejected sale")

	total, err := s.svc.Revenue(prodName)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.NewFromInt(100_000)))
}

func (s *SellTestSuite) TestSellGeneralInsufficientMutatesNothing() {
	_, err := s.svc.SellGeneral(prodName, s.fieldDate(), anaEmail, anaPass, 101)
	s.ErrorIs(err, domain.ErrInsufficientInventory)

	_, show, err := s.svc.resolveShow(prodName, s.fieldDate())
	s.Require().NoError(err)
	s.Equal(100, show.UnitsLeft())
}

func (s *SellTestSuite) TestSellSeats() {
	tickets, err := s.svc.SellSeats(prodName, s.rexDate(), anaEmail, anaPass, "VIP", []int{5})
	s.Require().NoError(err)
	s.Require().Len(tickets, 1)

	t := tickets[0]
	s.Equal("VIP", t.Sector)
	s.Equal(5, t.Seat)
	s.Equal(1, t.Row)
	s.True(t.Price.Equal(decimal.NewFromInt(60)), "50 + 20%% markup, got %s", t.Price)

	// The same seat cannot be sold twice.
	_, err = s.svc.SellSeats(prodName, s.rexDate(), brunoEmail, brunoPass, "VIP", []int{5})
	s.ErrorIs(err, domain.ErrSeatAlreadySold)
}

func (s *SellTestSuite) TestSellSeatsDerivesRows() {
	tickets, err := s.svc.SellSeats(prodName, s.rexDate(), anaEmail, anaPass, "Platea", []int{1, 10, 11, 25})
	s.Require().NoError(err)
	s.Require().Len(tickets, 4)

	rows := []int{tickets[0].Row, tickets[1].Row, tickets[2].Row, tickets[3].Row}
	s.Equal([]int{1, 1, 2, 3}, rows)
}

func (s *SellTestSuite) TestSellSeatsFailFastMutatesNothing() {
	_, err := s.svc.SellSeats(prodName, s.rexDate(), anaEmail, anaPass, "VIP", []int{9})
	s.Require().NoError(err)

	// Seat 9 is taken; the batch must be rejected before touching 7 or 8.
	_, err = s.svc.SellSeats(prodName, s.rexDate(), brunoEmail, brunoPass, "VIP", []int{7, 8, 9})
	s.ErrorIs(err, domain.ErrSeatAlreadySold)

	_, show, err := s.svc.resolveShow(prodName, s.rexDate())
	s.Require().NoError(err)
	for _, seat := range []int{7, 8} {
		free, err := show.SeatAvailable("VIP", seat)
		s.Require().NoError(err)
		s.True(free, "seat %d must stay free", seat)
	}

	total, err := s.svc.Revenue(prodName)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.NewFromInt(60)), "only the first sale collected")
}

func (s *SellTestSuite) TestSellSeatsRejectsRepeatedSeat() {
	_, err := s.svc.SellSeats(prodName, s.rexDate(), anaEmail, anaPass, "VIP", []int{5, 5})
	s.Error(err)

	// Nothing was minted, collected, or reserved.
	_, show, err := s.svc.resolveShow(prodName, s.rexDate())
	s.Require().NoError(err)
	free, err := show.SeatAvailable("VIP", 5)
	s.Require().NoError(err)
	s.True(free)

	total, err := s.svc.Revenue(prodName)
	s.Require().NoError(err)
	s.True(total.IsZero())

	history, err := s.svc.UserTickets(anaEmail)
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *SellTestSuite) TestSellSeatsErrors() {
	tests := []struct {
		name    string
		sector  string
		seats   []int
		wantErr error
	}{
		{name: "should fail on an unknown sector", sector: "Pullman", seats: []int{1}, wantErr: domain.ErrSectorNotFound},
		{name: "should fail on seat zero", sector: "VIP", seats: []int{0}, wantErr: domain.ErrSeatOutOfRange},
		{name: "should fail past the sector's last seat", sector: "VIP", seats: []int{11}, wantErr: domain.ErrSeatOutOfRange},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.SellSeats(prodName, s.rexDate(), anaEmail, anaPass, tt.sector, tt.seats)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *SellTestSuite) TestSellSeatsOnGeneralAdmissionFails() {
	_, err := s.svc.SellSeats(prodName, s.fieldDate(), anaEmail, anaPass, "VIP", []int{1})
	s.ErrorIs(err, domain.ErrWrongVenueKind)
}

// At most one active ticket may reference a (show, sector, seat) tuple.
func (s *SellTestSuite) TestAtMostOneActiveTicketPerSeat() {
	_, err := s.svc.SellSeats(prodName, s.rexDate(), anaEmail, anaPass, "VIP", []int{3})
	s.Require().NoError(err)
	_, err = s.svc.SellSeats(prodName, s.rexDate(), brunoEmail, brunoPass, "VIP", []int{3})
	s.ErrorIs(err, domain.ErrSeatAlreadySold)

	seen := 0
	for _, t := range s.svc.ProductionTickets(prodName) {
		if t.Sector == "VIP" && t.Seat == 3 && t.Date == s.rexDate() {
			seen++
		}
	}
	s.Equal(1, seen)
}
