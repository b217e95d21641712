package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/gopxl/beep/v2/speaker"
)

// handleTimerTick processes timer tick events.
func (t *Timer) handleTimerTick(msg btimer.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	return t, cmd
}

// handleTimerStartStop manages timer start/stop events.
func (t *Timer) handleTimerStartStop(
	msg btimer.StartStopMsg,
) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	if t.SoundStream != nil {
		if !t.clock.Running() {
			_ = speaker.Suspend()
		} else {
			_ = speaker.Resume()
		}
	}

	return t, cmd
}

// finishSession records the session, notifies, and runs the post-session
// command before quitting.
func (t *Timer) finishSession() tea.Cmd {
	t.done = true

	t.stopAmbientSound()

	t.recordSession()

	t.notify()

	err := t.runSessionCmd(t.Opts.Focus.SessionCmd)
	if err != nil {
		slog.Error("session command failed", slog.Any("error", err))
	}

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case btimer.TickMsg:
		return t.handleTimerTick(msg)

	case btimer.StartStopMsg:
		return t.handleTimerStartStop(msg)

	case btimer.TimeoutMsg:
		return t, t.finishSession()

	case tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))

		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			cmd = t.clock.Toggle()

			return t, cmd

		case key.Matches(msg, defaultKeymap.stop):
			return t, t.finishSession()

		case key.Matches(msg, defaultKeymap.quit):
			t.stopAmbientSound()

			t.recordSession()

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
