package timer

import (
	"testing"
	"time"

	"github.com/haruapp/haru/internal/config"
	"github.com/haruapp/haru/internal/models"
	"github.com/haruapp/haru/internal/timeutil"
	"github.com/haruapp/haru/records"
)

type memPersister struct {
	blobs map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{blobs: make(map[string][]byte)}
}

func (m *memPersister) PutBucketBlob(_, dateKey string, blob []byte) error {
	m.blobs[dateKey] = blob
	return nil
}

func (m *memPersister) DeleteBucketBlob(_, dateKey string) error {
	delete(m.blobs, dateKey)
	return nil
}

func (m *memPersister) LoadCollection(_ string) (map[string][]byte, error) {
	return m.blobs, nil
}

func (m *memPersister) ClearCollection(_ string) error {
	m.blobs = make(map[string][]byte)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Focus: config.FocusConfig{
			Duration:    25 * time.Minute,
			DefaultGoal: "study",
		},
	}
}

func newTestTimer(t *testing.T, goal string, d time.Duration) *Timer {
	t.Helper()

	focus, err := records.NewStore[models.FocusRecord]("focus", newMemPersister())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tm, err := New(focus, testConfig(), goal, d)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return tm
}

func TestNewDefaults(t *testing.T) {
	tm := newTestTimer(t, "", 0)

	if tm.duration != 25*time.Minute {
		t.Errorf("expected configured duration, got %s", tm.duration)
	}

	if tm.Goal != "study" {
		t.Errorf("expected default goal, got %q", tm.Goal)
	}
}

func TestRecordSession(t *testing.T) {
	tm := newTestTimer(t, "reading", 30*time.Minute)
	tm.StartTime = time.Date(2025, time.October, 9, 14, 0, 0, 0, time.UTC)

	// 10 minutes remaining on the clock
	tm.clock.Timeout = 20 * time.Minute

	tm.recordSession()

	key := timeutil.DateKey(tm.StartTime)

	recs := tm.focus.GetByDate(key)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	got := recs[0]

	if got.Goal != "reading" {
		t.Errorf("unexpected goal: %q", got.Goal)
	}

	if got.FocusedTime != 600 {
		t.Errorf("expected 600 focused seconds, got %d", got.FocusedTime)
	}

	if got.Type != models.FocusTimer {
		t.Errorf("unexpected type: %q", got.Type)
	}

	if got.Date != "2025-10-09" {
		t.Errorf("unexpected date: %q", got.Date)
	}

	// a second call must not duplicate the record
	tm.recordSession()

	if got := len(tm.focus.GetByDate(key)); got != 1 {
		t.Errorf("expected 1 record after repeat call, got %d", got)
	}
}

func TestRecordSessionSkipsZeroElapsed(t *testing.T) {
	tm := newTestTimer(t, "reading", 30*time.Minute)
	tm.StartTime = time.Now()

	// nothing elapsed yet
	tm.recordSession()

	if got := len(tm.focus.GetByDate(timeutil.DateKey(tm.StartTime))); got != 0 {
		t.Errorf("expected no records, got %d", got)
	}
}

func TestRunSessionCmdRejectsUnparseable(t *testing.T) {
	tm := newTestTimer(t, "", 0)

	err := tm.runSessionCmd("echo 'unbalanced")
	if err == nil {
		t.Fatal("expected an error for unparseable command")
	}
}
