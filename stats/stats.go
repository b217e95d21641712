// Package stats folds focus records into daily, weekly, and monthly
// summaries.
package stats

import (
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/haruapp/haru/internal/models"
	"github.com/haruapp/haru/internal/timeutil"
)

// Activity is the focused time accumulated under a single goal.
type Activity struct {
	Goal    string
	Minutes int
}

// DailySummary describes one date bucket grouped by goal.
type DailySummary struct {
	Date               string
	Activities         []Activity
	TotalMinutes       int
	ConcentrationRatio int
}

// WeeklySummary describes the calendar week containing the reference date.
// Day indices follow time.Weekday (0 = Sunday).
type WeeklySummary struct {
	WeekStart           string
	DayMinutes          [timeutil.DaysInAWeek]int
	TotalMinutes        int
	AverageMinutes      int
	MostConcentratedDay time.Weekday
	ConcentrationRatio  int
}

// MonthlySummary describes the calendar month containing the reference date.
// DayMinutes is indexed by day-of-month minus one.
type MonthlySummary struct {
	MonthStart         string
	DayMinutes         []int
	Activities         []Activity
	TotalMinutes       int
	AverageMinutes     int
	ConcentrationRatio int
}

// Daily groups one date's records by goal. Records filed under other dates
// are ignored. Zero records yield a zero summary with ratio 0.
func Daily(recs []models.FocusRecord, ref time.Time) DailySummary {
	dateKey := timeutil.DateKey(ref)

	seconds := make(map[string]int)

	var goals []string

	for _, rec := range recs {
		if rec.Date != dateKey {
			continue
		}

		if _, seen := seconds[rec.Goal]; !seen {
			goals = append(goals, rec.Goal)
		}

		seconds[rec.Goal] += rec.FocusedTime
	}

	summary := DailySummary{Date: dateKey}

	// first-encountered goal order keeps the output deterministic
	for _, goal := range goals {
		mins := seconds[goal] / 60

		summary.Activities = append(summary.Activities, Activity{
			Goal:    goal,
			Minutes: mins,
		})
		summary.TotalMinutes += mins
	}

	summary.ConcentrationRatio = ratio(
		summary.TotalMinutes,
		timeutil.MinutesInADay,
	)

	return summary
}

// Weekly buckets records into the 7 calendar days of the week containing the
// reference date. Ties for the most concentrated day resolve to the earlier
// day in week order.
func Weekly(recs []models.FocusRecord, ref time.Time) WeeklySummary {
	weekStart := timeutil.WeekStart(ref)
	weekEnd := weekStart.AddDate(0, 0, timeutil.DaysInAWeek)

	var daySeconds [timeutil.DaysInAWeek]int

	for _, rec := range recs {
		date, err := timeutil.ParseDateKey(rec.Date)
		if err != nil {
			continue
		}

		if date.Before(weekStart) || !date.Before(weekEnd) {
			continue
		}

		daySeconds[int(date.Weekday())] += rec.FocusedTime
	}

	summary := WeeklySummary{WeekStart: timeutil.DateKey(weekStart)}

	for i, secs := range daySeconds {
		summary.DayMinutes[i] = secs / 60
		summary.TotalMinutes += summary.DayMinutes[i]
	}

	for i, mins := range summary.DayMinutes {
		if mins > summary.DayMinutes[summary.MostConcentratedDay] {
			summary.MostConcentratedDay = time.Weekday(i)
		}
	}

	summary.AverageMinutes = summary.TotalMinutes / timeutil.DaysInAWeek
	summary.ConcentrationRatio = ratio(
		summary.TotalMinutes,
		timeutil.DaysInAWeek*timeutil.MinutesInADay,
	)

	return summary
}

// Monthly buckets records by calendar day within the month containing the
// reference date and adds a per-goal breakdown sorted by focused time
// descending (equal times in natural goal order).
func Monthly(recs []models.FocusRecord, ref time.Time) MonthlySummary {
	monthStart := timeutil.MonthStart(ref)
	monthEnd := monthStart.AddDate(0, 1, 0)
	daysInMonth := timeutil.DaysIn(ref)

	daySeconds := make([]int, daysInMonth)
	goalSeconds := make(map[string]int)

	for _, rec := range recs {
		date, err := timeutil.ParseDateKey(rec.Date)
		if err != nil {
			continue
		}

		if date.Before(monthStart) || !date.Before(monthEnd) {
			continue
		}

		daySeconds[date.Day()-1] += rec.FocusedTime
		goalSeconds[rec.Goal] += rec.FocusedTime
	}

	summary := MonthlySummary{
		MonthStart: timeutil.DateKey(monthStart),
		DayMinutes: make([]int, daysInMonth),
	}

	for i, secs := range daySeconds {
		summary.DayMinutes[i] = secs / 60
		summary.TotalMinutes += summary.DayMinutes[i]
	}

	for goal, secs := range goalSeconds {
		summary.Activities = append(summary.Activities, Activity{
			Goal:    goal,
			Minutes: secs / 60,
		})
	}

	sort.SliceStable(summary.Activities, func(i, j int) bool {
		a, b := summary.Activities[i], summary.Activities[j]
		if a.Minutes != b.Minutes {
			return a.Minutes > b.Minutes
		}

		return natural.Less(a.Goal, b.Goal)
	})

	summary.AverageMinutes = summary.TotalMinutes / daysInMonth
	summary.ConcentrationRatio = ratio(
		summary.TotalMinutes,
		daysInMonth*timeutil.MinutesInADay,
	)

	return summary
}

// ratio returns the floored percentage of windowMinutes covered by total,
// clamped to [0,100].
func ratio(total, windowMinutes int) int {
	if total <= 0 {
		return 0
	}

	r := total * 100 / windowMinutes
	if r > 100 {
		return 100
	}

	return r
}
