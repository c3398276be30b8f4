package booking

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tferraro/ticketek/internal/clock"
	"github.com/tferraro/ticketek/internal/domain"
)

const (
	prodName = "Rock Nacional"

	fieldVenue = "River Field"
	rexVenue   = "Gran Rex"
	arenaVenue = "Movistar Arena"

	anaEmail   = "ana@example.com"
	anaPass    = "hunter22"
	brunoEmail = "bruno@example.com"
	brunoPass  = "secreto1"
)

// testNow is the instant the seeded fixtures are relative to; every seeded
// show lies after it.
var testNow = time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)

// fakeClock is settable between calls, so a test can let a show date pass.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Set(t time.Time) { c.now = t }

// scriptClock returns one scripted instant per Now call, sticking to the
// last one when the script runs out. It lets a test move time forward in the
// middle of a multi-step workflow call.
type scriptClock struct {
	times []time.Time
	idx   int
}

func (c *scriptClock) Now() time.Time {
	if c.idx >= len(c.times) {
		return c.times[len(c.times)-1]
	}
	t := c.times[c.idx]
	c.idx++
	return t
}

func date(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestService(clk clock.Clock) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), clk)
}

// newSeededService builds a catalog with the three venue kinds, two buyers,
// and one production scheduled at each venue.
func newSeededService(t *testing.T, clk clock.Clock) *Service {
	t.Helper()

	s := newTestService(clk)

	_, err := s.RegisterVenue(VenueRegistration{
		Name: fieldVenue, Address: "Av. Figueroa Alcorta 7597", Kind: domain.GeneralAdmission, Capacity: 100,
	})
	require.NoError(t, err)

	_, err = s.RegisterVenue(VenueRegistration{
		Name: rexVenue, Address: "Av. Corrientes 857", Kind: domain.Sectored, Capacity: 100, SeatsPerRow: 10,
		Sectors: []SectorRegistration{
			{Name: "VIP", Capacity: 10, MarkupPercent: 20},
			{Name: "Platea", Capacity: 90, MarkupPercent: 0},
		},
	})
	require.NoError(t, err)

	_, err = s.RegisterVenue(VenueRegistration{
		Name: arenaVenue, Address: "Humboldt 450", Kind: domain.SectoredSurcharge, Capacity: 120, SeatsPerRow: 12,
		Stands: 4, Surcharge: decimal.NewFromInt(500),
		Sectors: []SectorRegistration{
			{Name: "Palco", Capacity: 24, MarkupPercent: 50},
			{Name: "General Alta", Capacity: 96, MarkupPercent: 10},
		},
	})
	require.NoError(t, err)

	require.NoError(t, s.RegisterUser(anaEmail, "Ana", "Suarez", anaPass))
	require.NoError(t, s.RegisterUser(brunoEmail, "Bruno", "Paz", brunoPass))

	require.NoError(t, s.RegisterProduction(prodName))

	_, err = s.ScheduleShow(prodName, date(t, "31/12/2030"), fieldVenue, decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = s.ScheduleShow(prodName, date(t, "15/01/2031"), rexVenue, decimal.NewFromInt(50))
	require.NoError(t, err)
	_, err = s.ScheduleShow(prodName, date(t, "15/02/2031"), rexVenue, decimal.NewFromInt(50))
	require.NoError(t, err)
	_, err = s.ScheduleShow(prodName, date(t, "20/02/2031"), arenaVenue, decimal.NewFromInt(100))
	require.NoError(t, err)

	return s
}
