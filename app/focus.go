package app

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/internal/duration"
	"github.com/haruapp/haru/internal/models"
	"github.com/haruapp/haru/internal/timeutil"
	"github.com/haruapp/haru/report"
	"github.com/haruapp/haru/timer"
)

// applyFocusOverrides applies command-line overrides to the loaded
// configuration.
func applyFocusOverrides(env *appEnv, ctx *cli.Context) {
	if ctx.Bool("disable-notification") {
		env.cfg.Notification.Enabled = false
	}

	if s := ctx.String("sound"); s != "" {
		env.cfg.Focus.Sound = s
	}

	if c := ctx.String("session-cmd"); c != "" {
		env.cfg.Focus.SessionCmd = c
	}
}

// focusAction starts an interactive focus session.
func focusAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	applyFocusOverrides(env, ctx)

	focus, err := env.focusRecords()
	if err != nil {
		return err
	}
	defer focus.Close()

	t, err := timer.New(
		focus,
		env.cfg,
		ctx.String("goal"),
		ctx.Duration("duration"),
	)
	if err != nil {
		return err
	}

	return t.Run()
}

// focusLogAction records a focus session after the fact.
func focusLogAction(ctx *cli.Context) error {
	d := ctx.Duration("duration")
	if d <= 0 {
		return cli.Exit("a positive --duration is required", 1)
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

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	day, err := timeutil.ParseDateKey(dateKey)
	if err != nil {
		return err
	}

	goal := ctx.String("goal")
	if goal == "" {
		goal = env.cfg.Focus.DefaultGoal
	}

	// anchor the record id to the target day, not the moment of logging
	createdAt := day.Add(time.Since(timeutil.RoundToStart(time.Now())))

	rec := models.NewFocusRecord(
		createdAt,
		goal,
		int(d.Seconds()),
		models.FocusManual,
	)

	focus.Insert(dateKey, rec)

	report.RecordAdded("Focus session")

	formatted, err := duration.FormatSeconds(rec.FocusedTime)
	if err == nil {
		pterm.Printfln("Logged %s on %s for %s", formatted, dateKey, goal)
	}

	return nil
}
