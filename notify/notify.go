// Package notify schedules local reminder notifications with a time-of-day
// trigger, optionally repeating on specific weekdays.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/haruapp/haru/internal/apperr"
)

var errInvalidTrigger = &apperr.Error{
	Message: "reminder time must be within 00:00-23:59",
}

// Reminder is a scheduled local notification. An empty Weekdays list means
// the reminder repeats every day.
type Reminder struct {
	ID       string         `json:"id"`
	Message  string         `json:"message"`
	Hour     int            `json:"hour"`
	Minute   int            `json:"minute"`
	Weekdays []time.Weekday `json:"weekdays,omitempty"`
}

// NextTrigger returns the next instant the reminder should fire after now.
func (r Reminder) NextTrigger(now time.Time) time.Time {
	next := time.Date(
		now.Year(),
		now.Month(),
		now.Day(),
		r.Hour,
		r.Minute,
		0,
		0,
		now.Location(),
	)

	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	if len(r.Weekdays) == 0 {
		return next
	}

	for i := 0; i < 7; i++ {
		if r.matches(next.Weekday()) {
			return next
		}

		next = next.AddDate(0, 0, 1)
	}

	return next
}

func (r Reminder) matches(day time.Weekday) bool {
	for _, d := range r.Weekdays {
		if d == day {
			return true
		}
	}

	return false
}

// ReminderStore is the durable storage collaborator for reminders.
type ReminderStore interface {
	PutReminder(id string, blob []byte) error
	DeleteReminder(id string) error
	ListReminders() ([][]byte, error)
}

// Notifier delivers a single notification. Delivery failures are treated as
// the capability being unavailable and are logged, never surfaced.
type Notifier func(title, message string) error

// Scheduler owns the reminder timers. Timers are only armed while Run is
// active, and every timer is released when Run returns so that no callback
// outlives its owner.
type Scheduler struct {
	mu      sync.Mutex
	db      ReminderStore
	deliver Notifier
	timers  map[string]*time.Timer
	running bool
	title   string
}

// Option adjusts a Scheduler.
type Option func(*Scheduler)

// WithNotifier replaces the beeep-backed delivery function.
func WithNotifier(n Notifier) Option {
	return func(s *Scheduler) {
		s.deliver = n
	}
}

// NewScheduler returns a scheduler delivering through desktop notifications.
func NewScheduler(title string, db ReminderStore, opts ...Option) *Scheduler {
	s := &Scheduler{
		db: db,
		deliver: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		timers: make(map[string]*time.Timer),
		title:  title,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Schedule persists a reminder and, if the scheduler is running, arms its
// timer. Scheduling an existing id replaces the reminder.
func (s *Scheduler) Schedule(r Reminder) error {
	if r.Hour < 0 || r.Hour > 23 || r.Minute < 0 || r.Minute > 59 {
		return errInvalidTrigger
	}

	blob, err := json.Marshal(r)
	if err != nil {
		return err
	}

	if err := s.db.PutReminder(r.ID, blob); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.armLocked(r)
	}

	return nil
}

// Cancel removes a reminder and disarms its timer. No-op if the id is
// unknown.
func (s *Scheduler) Cancel(id string) error {
	if err := s.db.DeleteReminder(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}

	return nil
}

// Reminders returns every persisted reminder.
func (s *Scheduler) Reminders() ([]Reminder, error) {
	blobs, err := s.db.ListReminders()
	if err != nil {
		return nil, err
	}

	out := make([]Reminder, 0, len(blobs))

	for _, blob := range blobs {
		var r Reminder

		if err := json.Unmarshal(blob, &r); err != nil {
			slog.Error("skipping undecodable reminder", slog.Any("error", err))
			continue
		}

		out = append(out, r)
	}

	return out, nil
}

// Run arms every persisted reminder and delivers notifications until the
// context ends. All timers are stopped before it returns.
func (s *Scheduler) Run(ctx context.Context) error {
	reminders, err := s.Reminders()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.running = true

	for _, r := range reminders {
		s.armLocked(r)
	}

	s.mu.Unlock()

	<-ctx.Done()

	s.mu.Lock()
	s.running = false

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}

	s.mu.Unlock()

	return ctx.Err()
}

// armLocked must be called with the mutex held.
func (s *Scheduler) armLocked(r Reminder) {
	if t, ok := s.timers[r.ID]; ok {
		t.Stop()
	}

	wait := time.Until(r.NextTrigger(time.Now()))

	s.timers[r.ID] = time.AfterFunc(wait, func() {
		s.fire(r)
	})
}

func (s *Scheduler) fire(r Reminder) {
	if err := s.deliver(s.title, r.Message); err != nil {
		slog.Warn(
			"notification delivery unavailable",
			slog.String("reminder", r.ID),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.armLocked(r)
	}
}
