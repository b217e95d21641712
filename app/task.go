package app

import (
	"encoding/json"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/internal/models"
	"github.com/haruapp/haru/internal/ui"
	"github.com/haruapp/haru/records"
	"github.com/haruapp/haru/report"
)

// findRecordID matches an id argument against a bucket, accepting a unique
// prefix of the full id.
func findRecordID[T records.Record](bucket []T, arg string) (string, bool) {
	var match string

	for i := range bucket {
		id := bucket[i].RecordID()

		if id == arg {
			return id, true
		}

		if strings.HasPrefix(id, arg) {
			if match != "" {
				// ambiguous prefix
				return "", false
			}

			match = id
		}
	}

	return match, match != ""
}

func shortID(id string) string {
	const width = 8

	if len(id) <= width {
		return id
	}

	return id[:width]
}

// taskAddAction handles the task add command which files a new task under a
// day.
func taskAddAction(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if text == "" {
		return cli.Exit("task text must not be empty", 1)
	}

	category, err := models.ParseCategory(ctx.String("category"))
	if err != nil {
		return err
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	tasks, err := env.tasks()
	if err != nil {
		return err
	}
	defer tasks.Close()

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	rec := models.NewTaskRecord(text, ctx.String("color"), category)

	tasks.Insert(dateKey, rec)

	report.RecordAdded("Task")

	return nil
}

// taskListAction prints the tasks filed under a day.
func taskListAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	tasks, err := env.tasks()
	if err != nil {
		return err
	}
	defer tasks.Close()

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	bucket := tasks.GetByDate(dateKey)

	if ctx.Bool("json") {
		b, err := json.Marshal(bucket)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(bucket) == 0 {
		pterm.Printfln("No tasks for %s", dateKey)
		return nil
	}

	tableBody := [][]string{{"ID", "TASK", "CATEGORY", "STATUS"}}

	for _, t := range bucket {
		status := "pending"
		if t.Completed {
			status = ui.Green("done")
		}

		tableBody = append(tableBody, []string{
			shortID(t.ID),
			t.Text,
			string(t.CategoryKey),
			status,
		})
	}

	ui.PrintTable(tableBody, ctx.App.Writer)

	return nil
}

// taskDoneAction marks the specified task as completed.
func taskDoneAction(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return cli.Exit("a task id is required", 1)
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	tasks, err := env.tasks()
	if err != nil {
		return err
	}
	defer tasks.Close()

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	id, ok := findRecordID(tasks.GetByDate(dateKey), arg)
	if !ok {
		report.RecordNotFound("Task", arg)
		return nil
	}

	completed := true

	outcome := tasks.Update(dateKey, id, func(t *models.TaskRecord) {
		models.TaskPatch{Completed: &completed}.Apply(t)
	})
	if outcome == records.NotFound {
		report.RecordNotFound("Task", arg)
		return nil
	}

	pterm.Success.Printfln("Task %s marked as done", shortID(id))

	return nil
}

// taskRemoveAction deletes the specified task.
func taskRemoveAction(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return cli.Exit("a task id is required", 1)
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	tasks, err := env.tasks()
	if err != nil {
		return err
	}
	defer tasks.Close()

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	id, ok := findRecordID(tasks.GetByDate(dateKey), arg)
	if !ok {
		report.RecordNotFound("Task", arg)
		return nil
	}

	if outcome := tasks.Delete(dateKey, id); outcome == records.NotFound {
		report.RecordNotFound("Task", arg)
		return nil
	}

	pterm.Success.Printfln("Task %s removed", shortID(id))

	return nil
}
