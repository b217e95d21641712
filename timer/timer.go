// Package timer operates the focus countdown and records completed sessions.
package timer

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	"github.com/haruapp/haru/internal/config"
	"github.com/haruapp/haru/internal/duration"
	"github.com/haruapp/haru/internal/models"
	"github.com/haruapp/haru/internal/timeutil"
	"github.com/haruapp/haru/records"
)

const (
	padding  = 2
	maxWidth = 80
)

type keymap struct {
	togglePlay key.Binding
	stop       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop and save"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Timer runs a single focus session and appends the result to the focus
// collection when it ends.
type Timer struct {
	Opts        *config.Config
	Goal        string
	StartTime   time.Time
	SoundStream beep.Streamer

	focus *records.Store[models.FocusRecord]

	clock    btimer.Model
	progress progress.Model
	help     help.Model

	duration time.Duration
	recorded bool
	done     bool
}

// New creates a timer for the given goal. A zero sessionDuration falls back
// to the configured focus duration.
func New(
	focus *records.Store[models.FocusRecord],
	cfg *config.Config,
	goal string,
	sessionDuration time.Duration,
) (*Timer, error) {
	if sessionDuration == 0 {
		sessionDuration = cfg.Focus.Duration
	}

	if goal == "" {
		goal = cfg.Focus.DefaultGoal
	}

	t := &Timer{
		Opts:     cfg,
		Goal:     goal,
		duration: sessionDuration,
		focus:    focus,
		clock:    btimer.New(sessionDuration),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}

	err := t.setAmbientSound()

	return t, err
}

func (t *Timer) Init() tea.Cmd {
	t.StartTime = time.Now()

	return t.clock.Init()
}

// elapsed reports how long the session has run, excluding paused time.
func (t *Timer) elapsed() time.Duration {
	return t.duration - t.clock.Timeout
}

// recordSession appends a focus record for the elapsed time. The record is
// filed under the day the session started. Zero-length sessions are not
// recorded.
func (t *Timer) recordSession() {
	if t.recorded {
		return
	}

	secs := int(t.elapsed().Seconds())
	if secs <= 0 {
		return
	}

	rec := models.NewFocusRecord(t.StartTime, t.Goal, secs, models.FocusTimer)

	t.focus.Insert(timeutil.DateKey(t.StartTime), rec)

	t.recorded = true
}

// notify sends a desktop notification and plays the completion sound.
func (t *Timer) notify() {
	if !t.Opts.Notification.Enabled {
		return
	}

	focused, err := duration.FormatSeconds(int(t.elapsed().Seconds()))
	if err != nil {
		focused = ""
	}

	msg := fmt.Sprintf("%s: %s", t.Goal, focused)

	err = beeep.Notify("Focus session complete", msg, "")
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}

	t.playEndSound(endSound)
}

// runSessionCmd executes the configured post-session command.
func (t *Timer) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// Run starts the timer program and blocks until the session ends or is
// stopped.
func (t *Timer) Run() error {
	p := tea.NewProgram(t)

	_, err := p.Run()

	return err
}
