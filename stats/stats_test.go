package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/haruapp/haru/internal/models"
)

func day(t *testing.T, key string) time.Time {
	t.Helper()

	parsed, err := time.ParseInLocation("2006-01-02", key, time.Local)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return parsed
}

func rec(date, goal string, seconds int) models.FocusRecord {
	return models.FocusRecord{
		ID:          date + goal,
		Date:        date,
		Goal:        goal,
		FocusedTime: seconds,
		Type:        models.FocusTimer,
	}
}

func TestDaily(t *testing.T) {
	ref := day(t, "2025-10-09")

	recs := []models.FocusRecord{
		rec("2025-10-09", "study", 600),
		rec("2025-10-09", "study", 1200),
		rec("2025-10-09", "study", 1800),
	}

	got := Daily(recs, ref)

	expected := DailySummary{
		Date:               "2025-10-09",
		Activities:         []Activity{{Goal: "study", Minutes: 60}},
		TotalMinutes:       60,
		ConcentrationRatio: 4, // floor(60/1440*100)
	}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Daily mismatch (-want +got):\n%s", diff)
	}
}

func TestDaily_IgnoresOtherDates(t *testing.T) {
	ref := day(t, "2025-10-09")

	recs := []models.FocusRecord{
		rec("2025-10-09", "study", 600),
		rec("2025-10-10", "study", 6000),
	}

	got := Daily(recs, ref)

	if got.TotalMinutes != 10 {
		t.Errorf("expected 10 minutes, got %d", got.TotalMinutes)
	}
}

func TestDaily_Empty(t *testing.T) {
	got := Daily(nil, day(t, "2025-10-09"))

	if got.TotalMinutes != 0 || got.ConcentrationRatio != 0 {
		t.Errorf("expected zero summary, got %+v", got)
	}

	if len(got.Activities) != 0 {
		t.Errorf("expected no activities, got %+v", got.Activities)
	}
}

func TestWeekly(t *testing.T) {
	// 2025-10-09 is a Thursday; its week starts Sunday 2025-10-05
	ref := day(t, "2025-10-09")

	recs := []models.FocusRecord{
		rec("2025-10-05", "study", 3600), // Sunday, 60 min
		rec("2025-10-07", "read", 1800),  // Tuesday, 30 min
		rec("2025-10-09", "study", 5400), // Thursday, 90 min
		rec("2025-10-12", "study", 9999), // next week, excluded
		rec("2025-10-04", "study", 9999), // previous week, excluded
	}

	got := Weekly(recs, ref)

	if got.WeekStart != "2025-10-05" {
		t.Errorf("expected week start 2025-10-05, got %s", got.WeekStart)
	}

	expectedDays := [7]int{60, 0, 30, 0, 90, 0, 0}
	if got.DayMinutes != expectedDays {
		t.Errorf("expected day minutes %v, got %v", expectedDays, got.DayMinutes)
	}

	if got.TotalMinutes != 180 {
		t.Errorf("expected 180 total minutes, got %d", got.TotalMinutes)
	}

	if got.AverageMinutes != 25 { // floor(180/7)
		t.Errorf("expected average 25, got %d", got.AverageMinutes)
	}

	if got.MostConcentratedDay != time.Thursday {
		t.Errorf("expected Thursday, got %s", got.MostConcentratedDay)
	}

	if got.ConcentrationRatio != 1 { // floor(180/10080*100)
		t.Errorf("expected ratio 1, got %d", got.ConcentrationRatio)
	}
}

func TestWeekly_TieResolvesToEarlierDay(t *testing.T) {
	ref := day(t, "2025-10-09")

	recs := []models.FocusRecord{
		rec("2025-10-06", "study", 3600), // Monday, 60 min
		rec("2025-10-08", "study", 3600), // Wednesday, 60 min
	}

	got := Weekly(recs, ref)

	if got.MostConcentratedDay != time.Monday {
		t.Errorf("expected tie to resolve to Monday, got %s", got.MostConcentratedDay)
	}
}

func TestMonthly(t *testing.T) {
	ref := day(t, "2025-10-15")

	recs := []models.FocusRecord{
		rec("2025-10-01", "study", 3600),
		rec("2025-10-01", "read", 1800),
		rec("2025-10-20", "read", 3600),
		rec("2025-09-30", "study", 9999), // previous month, excluded
		rec("2025-11-01", "study", 9999), // next month, excluded
	}

	got := Monthly(recs, ref)

	if len(got.DayMinutes) != 31 {
		t.Fatalf("expected 31 day buckets for October, got %d", len(got.DayMinutes))
	}

	if got.DayMinutes[0] != 90 || got.DayMinutes[19] != 60 {
		t.Errorf(
			"unexpected day buckets: day 1 = %d, day 20 = %d",
			got.DayMinutes[0],
			got.DayMinutes[19],
		)
	}

	if got.TotalMinutes != 150 {
		t.Errorf("expected 150 total minutes, got %d", got.TotalMinutes)
	}

	if got.AverageMinutes != 4 { // floor(150/31)
		t.Errorf("expected average 4, got %d", got.AverageMinutes)
	}

	// read has 90 minutes total, study 60: descending order
	expected := []Activity{
		{Goal: "read", Minutes: 90},
		{Goal: "study", Minutes: 60},
	}

	if diff := cmp.Diff(expected, got.Activities); diff != "" {
		t.Errorf("activity breakdown mismatch (-want +got):\n%s", diff)
	}

	if got.ConcentrationRatio != 0 { // floor(150/44640*100)
		t.Errorf("expected ratio 0, got %d", got.ConcentrationRatio)
	}
}

func TestMonthly_BreakdownTieUsesNaturalOrder(t *testing.T) {
	ref := day(t, "2025-10-15")

	recs := []models.FocusRecord{
		rec("2025-10-01", "goal10", 600),
		rec("2025-10-02", "goal2", 600),
	}

	got := Monthly(recs, ref)

	expected := []Activity{
		{Goal: "goal2", Minutes: 10},
		{Goal: "goal10", Minutes: 10},
	}

	if diff := cmp.Diff(expected, got.Activities); diff != "" {
		t.Errorf("tie ordering mismatch (-want +got):\n%s", diff)
	}
}

// Ratios must stay in [0,100] no matter how large the focused time gets.
func TestRatioClamping(t *testing.T) {
	ref := day(t, "2025-10-09")

	huge := []models.FocusRecord{
		rec("2025-10-09", "study", 1 << 40),
		rec("2025-10-07", "study", 1 << 40),
	}

	cases := []struct {
		name  string
		ratio int
	}{
		{"daily", Daily(huge, ref).ConcentrationRatio},
		{"weekly", Weekly(huge, ref).ConcentrationRatio},
		{"monthly", Monthly(huge, ref).ConcentrationRatio},
	}

	for _, tc := range cases {
		if tc.ratio < 0 || tc.ratio > 100 {
			t.Errorf("%s ratio out of range: %d", tc.name, tc.ratio)
		}
	}

	if got := Daily(huge, ref).ConcentrationRatio; got != 100 {
		t.Errorf("expected saturated daily ratio 100, got %d", got)
	}
}

// A month of nonstop focus saturates the ratio; pins down the formula's
// parenthesization with a concrete value.
func TestMonthly_FullMonthRatio(t *testing.T) {
	ref := day(t, "2025-10-15")

	var recs []models.FocusRecord
	for d := 1; d <= 31; d++ {
		key := time.Date(2025, 10, d, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		recs = append(recs, rec(key, "study", 86400))
	}

	got := Monthly(recs, ref)

	if got.TotalMinutes != 44640 {
		t.Errorf("expected 44640 total minutes, got %d", got.TotalMinutes)
	}

	if got.ConcentrationRatio != 100 {
		t.Errorf("expected ratio 100, got %d", got.ConcentrationRatio)
	}
}
