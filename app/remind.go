package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/internal/ui"
	"github.com/haruapp/haru/notify"
	"github.com/haruapp/haru/report"
)

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func parseReminderTime(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("--time must be in 24-hour HH:MM format")
	}

	return t.Hour(), t.Minute(), nil
}

func parseWeekdays(s string) ([]time.Weekday, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var days []time.Weekday

	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))

		day, ok := weekdayNames[name[:min(3, len(name))]]
		if !ok {
			return nil, fmt.Errorf("unknown weekday: %q", part)
		}

		days = append(days, day)
	}

	return days, nil
}

func (e *appEnv) scheduler() *notify.Scheduler {
	return notify.NewScheduler("haru", e.db)
}

// remindAddAction registers a repeating reminder.
func remindAddAction(ctx *cli.Context) error {
	message := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if message == "" {
		return cli.Exit("a reminder message is required", 1)
	}

	hour, minute, err := parseReminderTime(ctx.String("time"))
	if err != nil {
		return err
	}

	days, err := parseWeekdays(ctx.String("days"))
	if err != nil {
		return err
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	r := notify.Reminder{
		ID:       uuid.NewString(),
		Message:  message,
		Hour:     hour,
		Minute:   minute,
		Weekdays: days,
	}

	if err := env.scheduler().Schedule(r); err != nil {
		return err
	}

	report.RecordAdded("Reminder")

	return nil
}

// remindListAction prints the registered reminders.
func remindListAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	reminders, err := env.scheduler().Reminders()
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		pterm.Println("No reminders registered")
		return nil
	}

	tableBody := [][]string{{"ID", "TIME", "DAYS", "MESSAGE"}}

	for _, r := range reminders {
		days := "every day"

		if len(r.Weekdays) > 0 {
			names := make([]string, len(r.Weekdays))
			for i, d := range r.Weekdays {
				names[i] = d.String()[:3]
			}

			days = strings.Join(names, ", ")
		}

		tableBody = append(tableBody, []string{
			shortID(r.ID),
			fmt.Sprintf("%02d:%02d", r.Hour, r.Minute),
			days,
			r.Message,
		})
	}

	ui.PrintTable(tableBody, ctx.App.Writer)

	return nil
}

// remindRemoveAction unregisters a reminder.
func remindRemoveAction(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return cli.Exit("a reminder id is required", 1)
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	sched := env.scheduler()

	reminders, err := sched.Reminders()
	if err != nil {
		return err
	}

	id := arg

	for _, r := range reminders {
		if strings.HasPrefix(r.ID, arg) {
			id = r.ID
			break
		}
	}

	if err := sched.Cancel(id); err != nil {
		return err
	}

	pterm.Success.Printfln("Reminder %s removed", shortID(id))

	return nil
}

// remindRunAction delivers reminders until interrupted.
func remindRunAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	runCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	pterm.Info.Println("Delivering reminders. Press Ctrl-C to stop")

	return env.scheduler().Run(runCtx)
}
