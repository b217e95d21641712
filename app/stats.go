package app

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/internal/config"
	"github.com/haruapp/haru/internal/timeutil"
	"github.com/haruapp/haru/stats"
)

// statsAction computes a focus report for the specified time period.
func statsAction(ctx *cli.Context) error {
	statsCfg, err := config.Stats(ctx)
	if err != nil {
		return err
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	focus, err := env.focusRecords()
	if err != nil {
		return err
	}
	defer focus.Close()

	ref := statsCfg.Date

	var startKey, endKey string

	switch statsCfg.Period {
	case config.PeriodDaily:
		startKey = timeutil.DateKey(ref)
		endKey = startKey
	case config.PeriodWeekly:
		start := timeutil.WeekStart(ref)
		startKey = timeutil.DateKey(start)
		endKey = timeutil.DateKey(start.AddDate(0, 0, timeutil.DaysInAWeek-1))
	case config.PeriodMonthly:
		start := timeutil.MonthStart(ref)
		startKey = timeutil.DateKey(start)
		endKey = timeutil.DateKey(start.AddDate(0, 0, timeutil.DaysIn(ref)-1))
	}

	recs := focus.GetByDateRange(startKey, endKey)

	var summary any

	switch statsCfg.Period {
	case config.PeriodDaily:
		s := stats.Daily(recs, ref)
		summary = s

		if !ctx.Bool("json") {
			stats.RenderDaily(statsCfg.Stdout, s)
		}
	case config.PeriodWeekly:
		s := stats.Weekly(recs, ref)
		summary = s

		if !ctx.Bool("json") {
			stats.RenderWeekly(statsCfg.Stdout, s)
		}
	case config.PeriodMonthly:
		s := stats.Monthly(recs, ref)
		summary = s

		if !ctx.Bool("json") {
			stats.RenderMonthly(statsCfg.Stdout, s)
		}
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(summary)
		if err != nil {
			return err
		}

		fmt.Fprintln(statsCfg.Stdout, string(b))
	}

	return nil
}
