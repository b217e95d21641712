package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/haruapp/haru/internal/duration"
	"github.com/haruapp/haru/internal/ui"
)

const barChartChar = "▇"

const noRecordsMsg = "No focus records found for the specified period"

// RenderDaily writes a daily summary as a goal table plus totals.
func RenderDaily(w io.Writer, s DailySummary) {
	header := pterm.DefaultHeader.Sprintfln("Daily report: %s", s.Date)

	if len(s.Activities) == 0 {
		fmt.Fprintln(w, strings.TrimSpace(header))
		fmt.Fprintln(w, noRecordsMsg)

		return
	}

	tableBody := [][]string{{"GOAL", "FOCUSED TIME"}}

	for _, a := range s.Activities {
		formatted, _ := duration.FormatMinutes(a.Minutes)
		tableBody = append(tableBody, []string{a.Goal, formatted})
	}

	fmt.Fprint(w, header)
	ui.PrintTable(tableBody, w)
	fmt.Fprintln(w, totalsLine(s.TotalMinutes, s.ConcentrationRatio))
}

// RenderWeekly writes a weekly summary as a per-day bar chart plus totals.
func RenderWeekly(w io.Writer, s WeeklySummary) {
	header := pterm.DefaultHeader.Sprintfln("Weekly report: week of %s", s.WeekStart)

	fmt.Fprint(w, header)

	var bars pterm.Bars

	for i, mins := range s.DayMinutes {
		bars = append(bars, pterm.Bar{
			Value: mins,
			Label: time.Weekday(i).String(),
		})
	}

	fmt.Fprintln(w, barChart(bars))

	best, _ := duration.FormatMinutes(s.DayMinutes[s.MostConcentratedDay])
	avg, _ := duration.FormatMinutes(s.AverageMinutes)

	fmt.Fprintf(
		w,
		"Most concentrated day: %s (%s)\n",
		ui.Green(s.MostConcentratedDay.String()),
		best,
	)
	fmt.Fprintf(w, "Daily average: %s\n", ui.Green(avg))
	fmt.Fprintln(w, totalsLine(s.TotalMinutes, s.ConcentrationRatio))
}

// RenderMonthly writes a monthly summary as a per-day bar chart plus the
// goal breakdown.
func RenderMonthly(w io.Writer, s MonthlySummary) {
	header := pterm.DefaultHeader.Sprintfln("Monthly report: %s", s.MonthStart[:7])

	fmt.Fprint(w, header)

	var bars pterm.Bars

	for i, mins := range s.DayMinutes {
		bars = append(bars, pterm.Bar{
			Value: mins,
			Label: fmt.Sprintf("%02d", i+1),
		})
	}

	fmt.Fprintln(w, barChart(bars))

	if len(s.Activities) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Blue("Goals"))

		for _, a := range s.Activities {
			formatted, _ := duration.FormatMinutes(a.Minutes)
			fmt.Fprintf(w, "%s: %s\n", a.Goal, ui.Green(formatted))
		}
	}

	avg, _ := duration.FormatMinutes(s.AverageMinutes)

	fmt.Fprintf(w, "Daily average: %s\n", ui.Green(avg))
	fmt.Fprintln(w, totalsLine(s.TotalMinutes, s.ConcentrationRatio))
}

func totalsLine(totalMinutes, concentrationRatio int) string {
	formatted, _ := duration.FormatMinutes(totalMinutes)

	return fmt.Sprintf(
		"Time logged: %s (%s of the period)",
		ui.Green(formatted),
		ui.Green(fmt.Sprintf("%d%%", concentrationRatio)),
	)
}

func barChart(bars pterm.Bars) string {
	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return chart
}
