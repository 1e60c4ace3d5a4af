package almanac

import (
	"context"
	"log/slog"
	"time"
)

// adviceCap bounds how many recommends/avoids are surfaced per day.
const adviceCap = 5

// Service exposes the almanac read surface.
type Service interface {
	Overview(ctx context.Context, date time.Time) (Overview, error)
}

type service struct {
	oracle Oracle
	logger *slog.Logger
}

// NewService wires the almanac domain.
func NewService(oracle Oracle, logger *slog.Logger) Service {
	return &service{
		oracle: oracle,
		logger: logger.With("component", "almanac.service"),
	}
}

// Overview collects the lunar name, pillars, advice, term and festival facts
// for a date. Each oracle call degrades independently to a neutral value;
// Overview never fails.
func (s *service) Overview(_ context.Context, date time.Time) (Overview, error) {
	out := Overview{Date: date.Format("2006-01-02")}

	lunar, err := s.oracle.LunarInfo(date)
	if err != nil {
		s.logger.Warn("lunar info unavailable", "date", out.Date, "error", err)
	} else {
		out.Lunar = lunar
	}

	pillars, err := s.oracle.PillarsForDate(date)
	if err != nil {
		s.logger.Warn("date pillars unavailable", "date", out.Date, "error", err)
	} else {
		out.Pillars = pillars
	}

	advice, err := s.oracle.Advice(date)
	if err != nil {
		s.logger.Warn("almanac advice unavailable", "date", out.Date, "error", err)
	} else {
		out.Advice = capAdvice(advice)
	}

	term, err := s.oracle.SolarTerm(date)
	if err != nil {
		s.logger.Warn("solar term unavailable", "date", out.Date, "error", err)
	} else {
		out.Term = term
	}

	festival, err := s.oracle.Festivals(date)
	if err != nil {
		s.logger.Warn("festival info unavailable", "date", out.Date, "error", err)
	} else {
		out.Festival = festival
	}

	return out, nil
}

func capAdvice(advice DayAdvice) DayAdvice {
	if len(advice.Recommends) > adviceCap {
		advice.Recommends = advice.Recommends[:adviceCap]
	}
	if len(advice.Avoids) > adviceCap {
		advice.Avoids = advice.Avoids[:adviceCap]
	}
	return advice
}
