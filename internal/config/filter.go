package config

import (
	"io"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/internal/apperr"
)

// Period selects the aggregation window for a stats report.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

var periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

var (
	errInvalidPeriod = &apperr.Error{
		Message: "period must be one of: daily, weekly, monthly",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse the specified date",
	}
)

// StatsConfig selects the records feeding a stats report.
type StatsConfig struct {
	Period Period
	Date   time.Time
	Stdout io.Writer
}

// Stats builds a report configuration from command-line arguments.
// The default is a daily report for today.
func Stats(ctx *cli.Context) (*StatsConfig, error) {
	cfg := &StatsConfig{
		Period: PeriodDaily,
		Date:   time.Now(),
		Stdout: Stdout,
	}

	if p := strings.TrimSpace(ctx.String("period")); p != "" {
		cfg.Period = Period(p)

		valid := false

		for _, known := range periods {
			if cfg.Period == known {
				valid = true
				break
			}
		}

		if !valid {
			return nil, errInvalidPeriod
		}
	}

	if d := ctx.String("date"); d != "" {
		parsed, err := ParseDate(d)
		if err != nil {
			return nil, err
		}

		cfg.Date = parsed
	}

	return cfg, nil
}

// ParseDate parses natural-language and formatted date expressions such as
// "yesterday", "3 days ago", or "2025-10-09".
func ParseDate(s string) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime:     time.Now(),
		DefaultTimezone: time.Local,
	}, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Wrap(err)
	}

	return dt.Time, nil
}
