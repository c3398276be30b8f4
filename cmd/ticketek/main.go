package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
	"github.com/tferraro/ticketek/internal/booking"
	"github.com/tferraro/ticketek/internal/clock"
	"github.com/tferraro/ticketek/internal/domain"
)

type config struct {
	Seed     string `env:"TICKETEK_SEED" env-default:"seed.json"`
	LogLevel string `env:"TICKETEK_LOG_LEVEL" env-default:"info"`
}

type seed struct {
	Venues []struct {
		Name        string `json:"name"`
		Address     string `json:"address"`
		Kind        string `json:"kind"`
		Capacity    int    `json:"capacity"`
		SeatsPerRow int    `json:"seatsPerRow"`
		Sectors     []struct {
			Name          string `json:"name"`
			Capacity      int    `json:"capacity"`
			MarkupPercent int    `json:"markupPercent"`
		} `json:"sectors"`
		Stands    int    `json:"stands"`
		Surcharge string `json:"surcharge"`
	} `json:"venues"`
	Users []struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Password  string `json:"password"`
	} `json:"users"`
	Productions []struct {
		Name  string `json:"name"`
		Shows []struct {
			Date      string `json:"date"`
			Venue     string `json:"venue"`
			BasePrice string `json:"basePrice"`
		} `json:"shows"`
	} `json:"productions"`
	Sales []struct {
		Production string `json:"production"`
		Date       string `json:"date"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Count      int    `json:"count"`
		Sector     string `json:"sector"`
		Seats      []int  `json:"seats"`
	} `json:"sales"`
}

func main() {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "path to the JSON seed fixture")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	if err := run(cfg, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	data, err := os.ReadFile(cfg.Seed)
	if err != nil {
		return fmt.Errorf("reading seed: %w", err)
	}

	var sd seed
	if err := json.Unmarshal(data, &sd); err != nil {
		return fmt.Errorf("parsing seed: %w", err)
	}

	svc := booking.NewService(logger, clock.NewSystem())

	for _, v := range sd.Venues {
		kind, err := parseKind(v.Kind)
		if err != nil {
			return err
		}
		reg := booking.VenueRegistration{
			Name:        v.Name,
			Address:     v.Address,
			Kind:        kind,
			Capacity:    v.Capacity,
			SeatsPerRow: v.SeatsPerRow,
			Stands:      v.Stands,
		}
		for _, sec := range v.Sectors {
			reg.Sectors = append(reg.Sectors, booking.SectorRegistration{
				Name: sec.Name, Capacity: sec.Capacity, MarkupPercent: sec.MarkupPercent,
			})
		}
		if v.Surcharge != "" {
			if reg.Surcharge, err = decimal.NewFromString(v.Surcharge); err != nil {
				return fmt.Errorf("venue %s: surcharge: %w", v.Name, err)
			}
		}
		if _, err := svc.RegisterVenue(reg); err != nil {
			return fmt.Errorf("venue %s: %w", v.Name, err)
		}
	}

	for _, u := range sd.Users {
		if err := svc.RegisterUser(u.Email, u.FirstName, u.LastName, u.Password); err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}
	}

	for _, p := range sd.Productions {
		if err := svc.RegisterProduction(p.Name); err != nil {
			return fmt.Errorf("production %s: %w", p.Name, err)
		}
		for _, sh := range p.Shows {
			date, err := domain.ParseDate(sh.Date)
			if err != nil {
				return fmt.Errorf("production %s: %w", p.Name, err)
			}
			base, err := decimal.NewFromString(sh.BasePrice)
			if err != nil {
				return fmt.Errorf("production %s: base price: %w", p.Name, err)
			}
			if _, err := svc.ScheduleShow(p.Name, date, sh.Venue, base); err != nil {
				return fmt.Errorf("production %s: %w", p.Name, err)
			}
		}
	}

	for _, sale := range sd.Sales {
		date, err := domain.ParseDate(sale.Date)
		if err != nil {
			return fmt.Errorf("sale for %s: %w", sale.Production, err)
		}

		if len(sale.Seats) > 0 {
			_, err = svc.SellSeats(sale.Production, date, sale.Email, sale.Password, sale.Sector, sale.Seats)
		} else {
			_, err = svc.SellGeneral(sale.Production, date, sale.Email, sale.Password, sale.Count)
		}
		if err != nil {
			logger.Warn("sale rejected", "production", sale.Production, "date", sale.Date, "reason", err.Error())
		}
	}

	for _, p := range sd.Productions {
		total, err := svc.Revenue(p.Name)
		if err != nil {
			return err
		}
		logger.Info("revenue", "production", p.Name, "total", total.String())

		summaries, err := svc.ShowSummaries(p.Name)
		if err != nil {
			return err
		}
		for _, line := range summaries {
			logger.Info("show", "production", p.Name, "summary", line)
		}
	}

	return nil
}

func parseKind(s string) (domain.VenueKind, error) {
	switch strings.ToLower(s) {
	case "general-admission", "general":
		return domain.GeneralAdmission, nil
	case "sectored":
		return domain.Sectored, nil
	case "sectored-surcharge":
		return domain.SectoredSurcharge, nil
	}
	return 0, fmt.Errorf("unknown venue kind %q", s)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
